package product

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductExists     = errors.New("product already exists")
	ErrExpired           = errors.New("product is expired")
	ErrInsufficientStock = errors.New("not enough stock")
)
