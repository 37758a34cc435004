// Package auth guards the console behind a single administrator account.
package auth

import (
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/nkminh14/uniconsole/core"
)

var (
	NowFunc = time.Now // mockable

	ErrAuthenticationFailed = errors.New("Tên đăng nhập hoặc mật khẩu không đúng")
)

// Admin is the console operator. Only the password hash is kept in memory.
type Admin struct {
	Username     string
	PasswordHash []byte
}

func NewAdmin(username, pwd string) (Admin, error) {
	adm := Admin{Username: core.CleanString(username, true /* lower */)}
	if adm.Username == "" {
		return Admin{}, errors.New("admin username is empty")
	}
	if err := adm.SetPassword(pwd); err != nil {
		return Admin{}, errors.Wrap(err, "hashing admin password")
	}
	return adm, nil
}

func (adm *Admin) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	adm.PasswordHash = hash
	return nil
}

func (adm Admin) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(adm.PasswordHash, []byte(pwd))
}

func (adm Admin) Person() core.Person {
	return core.Person{ID: adm.Username, Username: adm.Username}
}

// Authenticate checks the credentials against the admin account.
// Both a wrong username and a wrong password give ErrAuthenticationFailed.
func (adm Admin) Authenticate(username, pwd string) error {
	if strings.ToLower(strings.TrimSpace(username)) != adm.Username {
		// keep the timing close to a real comparison
		_ = bcrypt.CompareHashAndPassword(adm.PasswordHash, []byte(pwd))
		return ErrAuthenticationFailed
	}
	if err := adm.CheckPassword(pwd); err != nil {
		return ErrAuthenticationFailed
	}
	return nil
}

// LoginForm is the posted login page.
type LoginForm struct {
	Username string `json:"username" form:"username" label:"Tên đăng nhập" validate:"required"`
	Password string `json:"password" form:"password" label:"Mật khẩu" validate:"required"`
}

func (f *LoginForm) Validate(validate *validator.Validate, translator ut.Translator) error {
	f.Username = core.CleanString(f.Username)
	return core.Check(validate, translator, f)
}

// Claims represents the session claims transmitted via a JWT cookie.
type Claims struct {
	jwt.StandardClaims
	Username string `json:"username,omitempty"`
}

func NewClaims(adm Admin, issuer string, expiresIn time.Duration) *Claims {
	now := NowFunc()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    issuer,
			Subject:   adm.Username,
			ExpiresAt: now.Add(expiresIn).Unix(),
			IssuedAt:  now.Unix(),
		},
		Username: adm.Username,
	}
}

func (c Claims) Person() core.Person {
	return core.Person{ID: c.Subject, Username: c.Username}
}

// GenerateToken signs the claims with HS256.
func GenerateToken(claims *Claims, secretKey []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString(secretKey)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

// ParseToken verifies a signed session token and returns its claims.
func ParseToken(token string, secretKey []byte) (*Claims, error) {
	claims := new(Claims)
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parsing token")
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
