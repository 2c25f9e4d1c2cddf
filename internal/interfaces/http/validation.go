package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/homeexotica-crm/internal/application/auth"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los errores usan el nombre JSON/form del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// fieldLabels etiquetas visibles que no salen de humanizar el nombre del campo.
var fieldLabels = map[string]string{
	"scheduled_at":   "Scheduled date",
	"follow_up_type": "follow-up type",
	"document_type":  "document type",
}

// bindJSON parsea el body y lo valida. Devuelve el error listo para respondError.
func bindJSON(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return errBadBody
	}
	return validateStruct(dst)
}

var errBadBody = errors.New("invalid body")

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidationError(err.Error())
	}
	return domain.NewValidationError(message(verrs[0]))
}

// message primer error de validación en el mismo lenguaje que los casos de uso.
func message(fe validator.FieldError) string {
	field := fe.Field()
	switch {
	case field == "phone" && fe.Tag() == "min":
		return auth.MsgInvalidPhone
	case field == "code":
		return auth.MsgInvalidCode
	case field == "items" && (fe.Tag() == "required" || fe.Tag() == "min"):
		return "Add at least one item"
	}
	switch fe.Tag() {
	case "required":
		return label(field) + " is required"
	case "min":
		return label(field) + " cannot be empty"
	case "email":
		return "Please enter a valid email address"
	case "oneof":
		return fmt.Sprintf("Invalid %s: %v", strings.ToLower(label(field)), fe.Value())
	default:
		return "Invalid " + strings.ToLower(label(field))
	}
}

// label "customer_name" -> "Customer name".
func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return strings.ToUpper(l[:1]) + l[1:]
	}
	s := strings.ReplaceAll(field, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// bindError responde el error de bindJSON.
func bindError(c *fiber.Ctx, err error) error {
	if errors.Is(err, errBadBody) {
		return invalidBody(c)
	}
	return respondError(c, err)
}

// idParam lee :id. Las filas usan UUID como clave: un id mal formado no existe.
func idParam(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", domain.ErrNotFound
	}
	return id, nil
}

// uuidQuery lee un filtro opcional por id desde la query.
func uuidQuery(c *fiber.Ctx, name string) (string, error) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return "", nil
	}
	if _, err := uuid.Parse(v); err != nil {
		return "", domain.NewValidationError("Invalid " + strings.ToLower(label(name)))
	}
	return v, nil
}
