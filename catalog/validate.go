package catalog

import (
	"errors"
	"go/token"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() func(File) error {
	v := validator.New()
	// goident accepts exported or unexported Go identifiers that are not keywords.
	_ = v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		return token.IsIdentifier(fl.Field().String())
	})

	return func(f File) error {
		err := v.Struct(f)
		if err == nil {
			return nil
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Error.Wrap(err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fe.Namespace()+" failed "+fe.Tag())
		}
		return Error.New("invalid catalog: %s", strings.Join(msgs, "; "))
	}
}
