package flash

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie carrying a signed one-shot notice across a redirect
const CookieName = "nf_flash"

// KindSuccess marks a notice confirming a completed action
const KindSuccess = "success"

// Message is a notice shown once on the next page view
type Message struct {
	Kind string
	Text string
}

type claims struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	jwt.RegisteredClaims
}

// Codec signs and verifies flash messages
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is how long an encoded message stays valid
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

func (c *Codec) Encode(m Message) (string, error) {
	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Kind: m.Kind,
		Text: m.Text,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign flash: %w", err)
	}
	return signed, nil
}

func (c *Codec) Decode(raw string) (Message, error) {
	var cl claims
	_, err := jwt.ParseWithClaims(raw, &cl, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return Message{}, fmt.Errorf("verify flash: %w", err)
	}
	if cl.Text == "" {
		return Message{}, errors.New("verify flash: empty message")
	}
	return Message{Kind: cl.Kind, Text: cl.Text}, nil
}
