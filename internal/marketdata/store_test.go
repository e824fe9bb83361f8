package marketdata

import (
	"context"
	"testing"
	"time"

	"stockfolio/internal/models"
	"stockfolio/internal/testutil"
)

func TestQuoteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty_store", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewQuoteStore(db)

		quotes, err := store.LatestQuotes(ctx)
		testutil.AssertNoError(t, err)
		if len(quotes) != 0 {
			t.Errorf("expected empty slice, got %d quotes", len(quotes))
		}
	})

	t.Run("latest_date_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewQuoteStore(db)

		older := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
		newer := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestQuote(t, db, "JKH", 190, older)
		testutil.CreateTestQuote(t, db, "COMB", 99, older)
		testutil.CreateTestQuote(t, db, "JKH", 195, newer)
		testutil.CreateTestQuote(t, db, "HNB", 150, newer)

		quotes, err := store.LatestQuotes(ctx)
		testutil.AssertNoError(t, err)
		if len(quotes) != 2 {
			t.Fatalf("expected 2 quotes for newest date, got %d", len(quotes))
		}
		// Ordered by symbol.
		if quotes[0].Symbol != "HNB" || quotes[1].Symbol != "JKH" {
			t.Errorf("expected [HNB JKH], got [%s %s]", quotes[0].Symbol, quotes[1].Symbol)
		}
		if quotes[1].Price != 195 {
			t.Errorf("expected newest JKH price 195, got %f", quotes[1].Price)
		}
	})

	t.Run("save_and_upsert", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewQuoteStore(db)

		asOf := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
		err := store.SaveQuotes(ctx, []models.Quote{
			{Symbol: "JKH", AsOf: asOf, Price: 195},
		})
		testutil.AssertNoError(t, err)

		// Same (symbol, as_of) updates in place instead of duplicating.
		err = store.SaveQuotes(ctx, []models.Quote{
			{Symbol: "JKH", AsOf: asOf, Price: 196, Volume: 500},
		})
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.Quote{}).Count(&count)
		if count != 1 {
			t.Fatalf("expected 1 quote row after upsert, got %d", count)
		}

		quotes, err := store.LatestQuotes(ctx)
		testutil.AssertNoError(t, err)
		if quotes[0].Price != 196 || quotes[0].Volume != 500 {
			t.Errorf("expected upserted price 196 volume 500, got %f / %d", quotes[0].Price, quotes[0].Volume)
		}
	})

	t.Run("save_empty_batch_is_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewQuoteStore(db)

		testutil.AssertNoError(t, store.SaveQuotes(ctx, nil))
	})
}
