package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid couvre tous les cas de rejet : token absent, malformé, expiré
// ou signé avec un autre secret.
var ErrInvalid = errors.New("token invalide")

// Service signe et vérifie les bearer tokens avec un secret partagé.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    time.Hour,
	}
}

// Issue signe tel quel le claim fourni par l'appelant, avec une expiration
// d'une heure. Le contenu du claim n'est PAS vérifié : n'importe qui peut
// demander un token pour n'importe quel email. Comportement hérité et
// assumé — l'identité réelle est établie côté client, le serveur ne fait
// que transporter le claim. Les gardes admin revalident le rôle en base.
func (s *Service) Issue(claim map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range claim {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(s.ttl).Unix()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify rejette avec ErrInvalid tout token absent, malformé, expiré ou
// signé avec le mauvais secret.
func (s *Service) Verify(tokenString string) (jwt.MapClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalid
	}

	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalid
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalid
	}
	return claims, nil
}
