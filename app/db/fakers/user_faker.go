package fakers

import (
	"github.com/go-faker/faker/v4"
	"github.com/tvolodin/go-technoshop/app/models"
)

func UserFaker() *models.User {
	return &models.User{
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Email:     faker.Email(),
		Password:  "password",
	}
}

func CustomerFaker(user *models.User) *models.Customer {
	return &models.Customer{
		UserID:  user.ID,
		Phone:   faker.Phonenumber(),
		Address: faker.GetRealAddress().Address,
	}
}
