//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор продавца
func MakeSeller(opts ...func(*domain.Seller)) domain.Seller {
	suffix := UniqSuffix()

	s := domain.Seller{
		ID:          "sel-" + suffix,
		Name:        "Seller " + suffix,
		AuthActorID: "actor-" + suffix,
	}

	for _, fn := range opts {
		fn(&s)
	}
	return s
}

func WithActorID(actorID string) func(*domain.Seller) {
	return func(s *domain.Seller) { s.AuthActorID = actorID }
}

// MakeLink — связь владения для продавца
func MakeLink(sellerID string, module domain.ModuleName) domain.OwnershipLink {
	return domain.OwnershipLink{
		SellerID: sellerID,
		Module:   module,
		EntityID: string(module) + "-" + UniqSuffix(),
	}
}
