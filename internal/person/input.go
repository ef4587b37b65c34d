package person

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput indicates that user-supplied fields for a new person are unusable.
var ErrInvalidInput = errors.New("person: invalid input")

// Input holds the raw fields for a new person, as given on the command line.
type Input struct {
	Name    string `validate:"required"`
	Surname string `validate:"required"`
	Pnumber string
	Birth   string `validate:"required,ddmmyyyy"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("ddmmyyyy", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	return v
}

// New builds a Person from in. Name and surname are trimmed and joined as
// "Surname Name"; the phone number is kept as given.
func New(in Input) (Person, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Surname = strings.TrimSpace(in.Surname)
	in.Birth = strings.TrimSpace(in.Birth)

	if err := validate.Struct(in); err != nil {
		return Person{}, describe(err)
	}

	birth, err := ParseDate(in.Birth)
	if err != nil {
		return Person{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return Person{
		Name:    in.Surname + " " + in.Name,
		Pnumber: in.Pnumber,
		Birth:   birth,
	}, nil
}

// describe turns validator errors into a single ErrInvalidInput error.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "ddmmyyyy":
			msgs = append(msgs, fmt.Sprintf("%s %q is not a dd.mm.yyyy date", field, fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}
