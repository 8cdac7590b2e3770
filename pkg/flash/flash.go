// Package flash encodes one-shot status messages into a signed token that
// can travel through a redirect in a cookie.
package flash

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	CategorySuccess = "success"
	CategoryDanger  = "danger"

	DefaultTTL = 5 * time.Minute
)

var ErrInvalidToken = errors.New("invalid flash token")

type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

func Success(text string) Message {
	return Message{Category: CategorySuccess, Text: text}
}

func Danger(text string) Message {
	return Message{Category: CategoryDanger, Text: text}
}

type claims struct {
	Messages []Message `json:"messages"`
	jwt.StandardClaims
}

// Codec signs messages with HS256 so a client cannot forge a status notice.
type Codec struct {
	Secret string
	TTL    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{
		Secret: secret,
		TTL:    ttl,
	}
}

func (c *Codec) Encode(messages []Message) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Messages: messages,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(c.TTL).Unix(),
		},
	})
	return t.SignedString([]byte(c.Secret))
}

// Decode verifies the signature and expiry of token and returns the messages
// it carries.
func (c *Codec) Decode(token string) ([]Message, error) {
	var cl claims
	t, err := jwt.ParseWithClaims(token, &cl, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(c.Secret), nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	return cl.Messages, nil
}
