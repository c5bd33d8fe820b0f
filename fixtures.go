package main

import (
	"context"
	"gamerating/internal/back"

	"gopkg.in/guregu/null.v4"
)

func loadFixtures(b *back.Back) error {
	games := []back.GameRatingInput{
		{
			Name:     null.StringFrom("Chess"),
			Author:   null.StringFrom("Ancient"),
			Rating:   null.StringFrom("5"),
			Comments: null.StringFrom("Classic"),
		},
		{
			Name:     null.StringFrom("Go"),
			Author:   null.StringFrom("Ancient"),
			Rating:   null.StringFrom("5"),
			Comments: null.StringFrom("Simple rules, deep game"),
		},
		{
			Name:     null.StringFrom("The Legend of Zelda: Ocarina of Time"),
			Author:   null.StringFrom("Nintendo"),
			Rating:   null.StringFrom("4"),
			Comments: null.StringFrom("Try the randomizer"),
		},
	}

	return b.LoadFixtures(context.Background(), games)
}
