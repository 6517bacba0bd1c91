package databind_test

import (
	"fmt"
	"image"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/ygrebnov/databind"
)

type Address struct {
	Line1 *string
}

type User struct {
	GroupName   *string
	Name        *string
	Email       *string
	Info        *string
	Age         int
	Activity    float32
	Step        float64
	LikesTravel bool
	IsOnline    bool
	Avatar      image.Image
	Amount      *float64
	Address     *Address
}

var (
	userGroupName   = databind.FieldOf[User, *string]("GroupName")
	userName        = databind.FieldOf[User, *string]("Name")
	userEmail       = databind.FieldOf[User, *string]("Email")
	userInfo        = databind.FieldOf[User, *string]("Info")
	userAge         = databind.FieldOf[User, int]("Age")
	userActivity    = databind.FieldOf[User, float32]("Activity")
	userStep        = databind.FieldOf[User, float64]("Step")
	userLikesTravel = databind.FieldOf[User, bool]("LikesTravel")
	userIsOnline    = databind.FieldOf[User, bool]("IsOnline")
	userAvatar      = databind.FieldOf[User, image.Image]("Avatar")
	userAmount      = databind.FieldOf[User, *float64]("Amount")
	userLine1       = databind.FieldOf[User, *string]("Address.Line1")
)

func ptr[T any](v T) *T { return &v }

func randomString() string {
	const alpha = "QWERTYUIOPASDFGHJKLZXCVBNMqwertyuiopasdfghjklzxcvbnm"
	var b strings.Builder
	for range 4 + rand.IntN(7) {
		b.WriteByte(alpha[rand.IntN(len(alpha))])
	}
	return b.String()
}

func randomUser() User {
	return User{
		GroupName:   ptr(fmt.Sprintf("Group %d", 1+rand.IntN(100))),
		Name:        ptr(randomString()),
		Email:       ptr(strconv.FormatInt(time.Now().UnixNano(), 10) + "@gmail.com"),
		Info:        ptr(randomString()),
		Age:         18 + rand.IntN(72),
		Activity:    rand.Float32(),
		Step:        float64(rand.IntN(100)),
		LikesTravel: rand.IntN(2) == 1,
		IsOnline:    rand.IntN(2) == 1,
		Avatar:      image.NewGray(image.Rect(0, 0, 1, 1)),
		Amount:      ptr(float64(rand.IntN(1000))),
	}
}

// deref returns *p, or "<nil>" so that nil and empty are told apart in failures.
func deref(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}
