package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator adapts go-playground/validator to Echo's Validator
// interface. Validation failures surface as 422, matching the contract
// the front-end was built against.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

// bindAndValidate decodes the JSON body and runs struct validation
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid request payload")
	}
	return c.Validate(req)
}

// PaymentVerifyRequest is shared by all four verify endpoints
type PaymentVerifyRequest struct {
	Reference string `json:"reference" validate:"required"`
}

// InitiateResponse is the common shape for initiate-payment endpoints
type InitiateResponse struct {
	Status           bool   `json:"status"`
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
}
