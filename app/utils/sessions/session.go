package sessions

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "technoshop-session"

	cartTokenSessionKey  = "cartToken"
	customerIDSessionKey = "customerID"
)

type SessionStore interface {
	GetCartToken(w http.ResponseWriter, r *http.Request) (string, error)
	ClearCartToken(w http.ResponseWriter, r *http.Request) error

	GetCustomerID(r *http.Request) uint
	SetCustomerID(w http.ResponseWriter, r *http.Request, customerID uint) error
	ClearSession(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) (*sessions.Session, error) {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		log.Printf("Error getting session: %v", err)
	}
	return session, nil
}

// GetCartToken returns the cart token carried by the session, minting and
// persisting a fresh one for first-time visitors.
func (c *CookieSessionStore) GetCartToken(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return "", err
	}

	if token, ok := session.Values[cartTokenSessionKey].(string); ok && token != "" {
		return token, nil
	}

	token := uuid.New().String()
	session.Values[cartTokenSessionKey] = token
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return token, nil
}

func (c *CookieSessionStore) ClearCartToken(w http.ResponseWriter, r *http.Request) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	delete(session.Values, cartTokenSessionKey)
	return session.Save(r, w)
}

func (c *CookieSessionStore) GetCustomerID(r *http.Request) uint {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return 0
	}
	customerID, ok := session.Values[customerIDSessionKey].(uint)
	if !ok {
		return 0
	}
	return customerID
}

func (c *CookieSessionStore) SetCustomerID(w http.ResponseWriter, r *http.Request, customerID uint) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	session.Values[customerIDSessionKey] = customerID
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	session.Options.MaxAge = -1
	session.Values = make(map[interface{}]interface{})
	return session.Save(r, w)
}
