package back

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/jmoiron/sqlx"
	"gopkg.in/guregu/null.v4"
)

// CreateGameRating stores a new GameRating under a freshly minted ID.
func (b *Back) CreateGameRating(ctx context.Context, in GameRatingInput) (GameRating, error) {
	game := NewGameRating(in)
	if err := b.transaction(ctx, func(tx *sqlx.Tx) error {
		return game.insert(ctx, tx)
	}); err != nil {
		return GameRating{}, storeError("insert", err)
	}

	log.Printf("info: new game rating %s has been added", game.ID)

	return game, nil
}

// FindGameRatingByName returns the first GameRating whose name is exactly the
// given one.
func (b *Back) FindGameRatingByName(ctx context.Context, name null.String) (GameRating, error) {
	// name = NULL never matches.
	if !name.Valid {
		return GameRating{}, errGameRatingNotFoundByName
	}

	game, err := getGameRatingByName(ctx, b.db, name.String)
	if errors.Is(err, sql.ErrNoRows) {
		return GameRating{}, errGameRatingNotFoundByName
	}
	if err != nil {
		return GameRating{}, storeError("select by name", err)
	}

	return game, nil
}

// UpdateGameRating replaces all the mutable fields of the GameRating with the
// given ID.
func (b *Back) UpdateGameRating(ctx context.Context, id string, in GameRatingInput) (GameRating, error) {
	game := GameRating{
		ID:       id,
		Name:     in.Name,
		Author:   in.Author,
		Rating:   in.Rating,
		Comments: in.Comments,
	}

	var affected int64
	if err := b.transaction(ctx, func(tx *sqlx.Tx) (err error) {
		affected, err = game.update(ctx, tx)
		return err
	}); err != nil {
		return GameRating{}, storeError("update", err)
	}

	if affected == 0 {
		return GameRating{}, errGameRatingNotFoundByID(id)
	}

	log.Printf("info: game rating %s has been updated", id)

	return game, nil
}

// DeleteGameRating removes the GameRating with the given ID.
func (b *Back) DeleteGameRating(ctx context.Context, id string) error {
	var affected int64
	if err := b.transaction(ctx, func(tx *sqlx.Tx) (err error) {
		affected, err = deleteGameRatingByID(ctx, tx, id)
		return err
	}); err != nil {
		return storeError("delete", err)
	}

	if affected == 0 {
		return errGameRatingNotFoundByID(id)
	}

	log.Printf("info: game rating %s has been deleted", id)

	return nil
}

// ListGameRatings returns every stored GameRating, never nil.
func (b *Back) ListGameRatings(ctx context.Context) ([]GameRating, error) {
	games, err := getGameRatings(ctx, b.db)
	if err != nil {
		return nil, storeError("select all", err)
	}

	return games, nil
}

// LoadFixtures inserts the given ratings in a single transaction.
func (b *Back) LoadFixtures(ctx context.Context, fixtures []GameRatingInput) error {
	return b.transaction(ctx, func(tx *sqlx.Tx) error {
		for _, v := range fixtures {
			game := NewGameRating(v)
			if err := game.insert(ctx, tx); err != nil {
				return storeError("insert fixture", err)
			}
		}

		return nil
	})
}
