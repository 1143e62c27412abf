package test

import (
	"github.com/diafit-org/summaries/test"
	"github.com/diafit-org/summaries/users"
)

func RandomUser() users.User {
	return users.User{
		ID: test.RandomUserID(),
		Timezone: test.Faker.RandomStringElement([]string{
			"Europe/Berlin", "America/New_York", "Asia/Tokyo", "UTC",
		}),
	}
}
