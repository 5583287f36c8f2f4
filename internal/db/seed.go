package db

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"time"

	"comefundme/internal/core/domain"
	"comefundme/internal/core/port"
)

// Seed starts demo campaigns through the ledger and donates random
// amounts to them. Campaigns that already exist are left as they are,
// so seeding twice is harmless.
func Seed(ctx context.Context, ledger port.LedgerUseCase) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	donors := make([]domain.Address, 10)
	for i := range donors {
		donors[i][0] = 0xd0
		donors[i][domain.AddressLength-1] = byte(i + 1)
	}

	for i := 1; i <= 5; i++ {
		var initiator domain.Address
		initiator[0] = 0xc0
		initiator[domain.AddressLength-1] = byte(i)
		title := fmt.Sprintf("Campaign %d", i)
		description := fmt.Sprintf("Demo campaign number %d", i)

		c, err := ledger.StartCampaign(ctx, initiator, title, description)
		if errors.Is(err, domain.ErrCampaignExists) {
			continue
		}
		if err != nil {
			return err
		}

		for j := 0; j < 3; j++ {
			donor := donors[r.Intn(len(donors))]
			// between 0.01 and 1 ether
			amount := new(big.Int).Mul(big.NewInt(int64(r.Intn(100)+1)), big.NewInt(1e16))
			if _, err = ledger.DonateToCampaign(ctx, donor, c.ID, amount); err != nil {
				return err
			}
		}
	}
	return nil
}
