package validator

import (
	"ctchen222/ox-game/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// "cell" accepts an index that addresses a square on the board.
	if err := validate.RegisterValidation("cell", func(fl validator.FieldLevel) bool {
		return fl.Field().CanInt() && game.ValidPosition(int(fl.Field().Int()))
	}); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}
