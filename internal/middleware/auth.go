package middleware

import (
	"context"
	"net/http"

	"github.com/cowboylogic-net/bookstore/internal/entities"
	"github.com/cowboylogic-net/bookstore/pkg/utils"
)

type authKey int

const (
	ownerKey authKey = iota
	tierKey
)

// AuthContext снимает идентичность покупателя с доверенных заголовков
// вышестоящего шлюза. Аутентификация и авторизация выполняются снаружи,
// ядро им доверяет.
func AuthContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerID := r.Header.Get("X-Customer-ID")
		if ownerID == "" {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		tier := entities.TierStandard
		if r.Header.Get("X-Customer-Tier") == string(entities.TierPartner) {
			tier = entities.TierPartner
		}

		ctx := context.WithValue(r.Context(), ownerKey, ownerID)
		ctx = context.WithValue(ctx, tierKey, tier)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func OwnerID(ctx context.Context) string {
	owner, _ := ctx.Value(ownerKey).(string)
	return owner
}

func Tier(ctx context.Context) entities.PriceTier {
	tier, ok := ctx.Value(tierKey).(entities.PriceTier)
	if !ok {
		return entities.TierStandard
	}
	return tier
}
