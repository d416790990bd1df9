package customer

import "errors"

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCustomerExists      = errors.New("customer already exists")
	ErrInsufficientBalance = errors.New("insufficient balance")
)
