package back

import (
	"context"
	"gamerating/internal/util"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"gopkg.in/guregu/null.v4"
)

// A GameRating is a user submitted review of a game. Only the ID is generated,
// everything else is free text stored as received, absent fields are NULL.
type GameRating struct {
	ID       string      `json:"id"`
	Name     null.String `json:"name"`
	Author   null.String `json:"author"`
	Rating   null.String `json:"rating"`
	Comments null.String `json:"comments"`
}

// GameRatingInput holds the mutable fields of a GameRating.
type GameRatingInput struct {
	Name     null.String
	Author   null.String
	Rating   null.String
	Comments null.String
}

var gameRatingColumns = []string{"id", "name", "author", "rating", "comments"} // nolint:gochecknoglobals

func NewGameRating(in GameRatingInput) GameRating {
	return GameRating{
		ID:       util.NewID(),
		Name:     in.Name,
		Author:   in.Author,
		Rating:   in.Rating,
		Comments: in.Comments,
	}
}

// Input returns the mutable fields of the GameRating.
func (g GameRating) Input() GameRatingInput {
	return GameRatingInput{
		Name:     g.Name,
		Author:   g.Author,
		Rating:   g.Rating,
		Comments: g.Comments,
	}
}

func (g *GameRating) insert(ctx context.Context, tx *sqlx.Tx) error {
	query, args, err := squirrel.Insert("gameRating").SetMap(squirrel.Eq{
		"id":       g.ID,
		"name":     g.Name,
		"author":   g.Author,
		"rating":   g.Rating,
		"comments": g.Comments,
	}).ToSql()
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

// update replaces every mutable field and returns the number of matched rows.
func (g *GameRating) update(ctx context.Context, tx *sqlx.Tx) (int64, error) {
	query, args, err := squirrel.Update("gameRating").SetMap(squirrel.Eq{
		"name":     g.Name,
		"author":   g.Author,
		"rating":   g.Rating,
		"comments": g.Comments,
	}).Where("gameRating.id = ?", g.ID).ToSql()
	if err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func deleteGameRatingByID(ctx context.Context, tx *sqlx.Tx, id string) (int64, error) {
	query, args, err := squirrel.Delete("gameRating").
		Where("gameRating.id = ?", id).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

// getGameRatingByName returns the first GameRating inserted with the given name.
func getGameRatingByName(ctx context.Context, q sqlx.QueryerContext, name string) (GameRating, error) {
	query, args, err := squirrel.Select(gameRatingColumns...).
		From("gameRating").
		Where("gameRating.name = ?", name).
		OrderBy("rowid ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return GameRating{}, err
	}

	var ret GameRating
	if err := sqlx.GetContext(ctx, q, &ret, query, args...); err != nil {
		return GameRating{}, err
	}

	return ret, nil
}

func getGameRatings(ctx context.Context, q sqlx.QueryerContext) ([]GameRating, error) {
	query, args, err := squirrel.Select(gameRatingColumns...).
		From("gameRating").
		OrderBy("rowid ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	ret := []GameRating{}
	if err := sqlx.SelectContext(ctx, q, &ret, query, args...); err != nil {
		return nil, err
	}

	return ret, nil
}
