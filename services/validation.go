package services

import (
	"chat-gateway/domain"
	"chat-gateway/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type roomRequest struct {
	Name     string `validate:"required,max=64"`
	Topic    string `validate:"max=256"`
	Password string `validate:"max=64"`
	Address  string `validate:"required,max=256"`
}

type textRequest struct {
	Message string `validate:"max=4096"`
	OOB     string `validate:"max=16384"`
}

type contactRequest struct {
	Name    string `validate:"required,max=64"`
	Comment string `validate:"max=256"`
}

type mailRequest struct {
	Subject  string `validate:"max=256"`
	Category string `validate:"max=64"`
}

func ValidateRoomParams(params domain.RoomParams) error {
	return check(roomRequest{
		Name:     params.Name,
		Topic:    params.Topic,
		Password: params.Password,
		Address:  params.Address,
	})
}

func ValidateText(message, oob string) error {
	return check(textRequest{Message: message, OOB: oob})
}

func ValidateContact(name, comment string) error {
	return check(contactRequest{Name: name, Comment: comment})
}

func ValidateMail(subject, category string) error {
	return check(mailRequest{Subject: subject, Category: category})
}

func check(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}
	return nil
}
