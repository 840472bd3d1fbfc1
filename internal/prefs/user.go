package prefs

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// DefaultUserName is stored when sign-in supplies no name.
const DefaultUserName = "User"

// User is the locally signed-in account. There is no backend; sign-in only
// records who is using the tool.
type User struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// FirstName returns the first word of the name, used in greetings.
func (u User) FirstName() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return DefaultUserName
	}
	return fields[0]
}

// Greeting returns the short welcome shown for a signed-in user.
func (u User) Greeting() string {
	return "Hi, " + u.FirstName()
}

var validate = validator.New()

// CurrentUser returns the signed-in user. ok is false when nobody is signed
// in or the stored record is unreadable.
func (s *Store) CurrentUser() (user User, ok bool, err error) {
	raw, err := s.Get(KeyCurrentUser)
	if errors.Is(err, ErrNotFound) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, err
	}
	if err := json.Unmarshal(raw, &user); err != nil {
		s.logger.Warn("ignoring stored user", zap.Error(err))
		return User{}, false, nil
	}
	return user, true, nil
}

// SetCurrentUser stores u as the signed-in user.
func (s *Store) SetCurrentUser(u User) error {
	if err := validate.Struct(u); err != nil {
		return eris.Wrap(err, "prefs: invalid user")
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return eris.Wrap(err, "prefs: encode user")
	}
	return s.Set(KeyCurrentUser, raw)
}

// SignIn records a mock sign-in. An empty name is stored as DefaultUserName.
func (s *Store) SignIn(email, name string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultUserName
	}
	u := User{Name: name, Email: strings.TrimSpace(email)}
	if err := s.SetCurrentUser(u); err != nil {
		return User{}, err
	}
	s.logger.Info("user signed in", zap.String("email", u.Email))
	return u, nil
}

// Logout forgets the signed-in user.
func (s *Store) Logout() error {
	return s.Delete(KeyCurrentUser)
}
