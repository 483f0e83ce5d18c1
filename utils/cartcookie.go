package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var ErrInvalidCartCookie = errors.New("invalid cart cookie")

// CartCookie carries the guest cart id between requests. The value is
// "cartID.base64(hmac(cartID))" so a tampered id is rejected instead of
// resolving someone else's cart.
type CartCookie struct {
	Secret []byte
	Name   string
	MaxAge time.Duration
	Secure bool
}

func NewCartCookie(secret []byte, name string, maxAge time.Duration, secure bool) *CartCookie {
	return &CartCookie{Secret: secret, Name: name, MaxAge: maxAge, Secure: secure}
}

func (cc *CartCookie) Encode(cartID string) string {
	return cartID + "." + sign(cc.Secret, cartID)
}

func (cc *CartCookie) Decode(v string) (string, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 || parts[0] == "" {
		return "", ErrInvalidCartCookie
	}
	if !verify(cc.Secret, parts[0], parts[1]) {
		return "", ErrInvalidCartCookie
	}
	return parts[0], nil
}

func (cc *CartCookie) GetCartID(c *gin.Context) (string, bool) {
	v, err := c.Cookie(cc.Name)
	if err != nil || v == "" {
		return "", false
	}
	id, err := cc.Decode(v)
	if err != nil {
		cc.Clear(c)
		return "", false
	}
	return id, true
}

func (cc *CartCookie) Set(c *gin.Context, cartID string) {
	c.SetSameSite(2) // Lax
	c.SetCookie(cc.Name, cc.Encode(cartID), int(cc.MaxAge.Seconds()), "/", "", cc.Secure, true)
}

func (cc *CartCookie) Clear(c *gin.Context) {
	c.SetSameSite(2) // Lax
	c.SetCookie(cc.Name, "", -1, "/", "", cc.Secure, true)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
