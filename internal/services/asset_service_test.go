package services

import (
	"testing"

	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
	"stockfolio/internal/testutil"
)

func TestAddAsset(t *testing.T) {
	t.Run("fixed_deposit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)

		asset, err := svc.AddAsset(user.ID, models.AssetFixedDeposit, AssetInput{
			Name:      "NSB 12-month FD",
			Bank:      "NSB",
			Principal: fp(500000),
		})
		testutil.AssertNoError(t, err)
		if asset.ID == "" {
			t.Fatal("expected non-empty asset ID")
		}
		// Principal only; no interest projection.
		if asset.CurrentValue != 500000 {
			t.Errorf("expected current value 500000, got %f", asset.CurrentValue)
		}
	})

	t.Run("missing_kind_field", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.AddAsset(user.ID, models.AssetFixedDeposit, AssetInput{Name: "FD without principal"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.AddAsset(user.ID, models.AssetTreasuryBond, AssetInput{Name: "Bond", Units: fp(10)})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_kind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.AddAsset(user.ID, "antique", AssetInput{Name: "Clock"})
		testutil.AssertAppError(t, err, "INVALID_ASSET_KIND")
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.AddAsset(user.ID, models.AssetSavings, AssetInput{Balance: fp(1000)})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("zero_balance_savings_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)

		asset, err := svc.AddAsset(user.ID, models.AssetSavings, AssetInput{Name: "Empty account", Balance: fp(0)})
		testutil.AssertNoError(t, err)
		if asset.CurrentValue != 0 {
			t.Errorf("expected current value 0, got %f", asset.CurrentValue)
		}
	})
}

func TestListAssets(t *testing.T) {
	t.Run("computes_values_on_read", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestFixedDeposit(t, db, user.ID, 500000)

		result, err := svc.ListAssets(user.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 1 {
			t.Fatalf("expected 1 asset, got %d", len(result.Data))
		}
		if result.Data[0].CurrentValue != 500000 {
			t.Errorf("expected computed current value 500000, got %f", result.Data[0].CurrentValue)
		}
	})

	t.Run("scoped_to_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		testutil.CreateTestFixedDeposit(t, db, other.ID, 100000)

		result, err := svc.ListAssets(user.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 0 {
			t.Errorf("expected no assets for user, got %d", len(result.Data))
		}
	})
}

func TestUpdateAsset(t *testing.T) {
	t.Run("replaces_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)
		asset := testutil.CreateTestFixedDeposit(t, db, user.ID, 500000)

		updated, err := svc.UpdateAsset(user.ID, asset.ID, AssetInput{
			Name:      asset.Name,
			Bank:      "HNB",
			Principal: fp(750000),
		})
		testutil.AssertNoError(t, err)
		if updated.Bank != "HNB" {
			t.Errorf("expected bank HNB, got %s", updated.Bank)
		}
		if updated.CurrentValue != 750000 {
			t.Errorf("expected current value 750000, got %f", updated.CurrentValue)
		}
	})

	t.Run("kind_fields_still_required", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)
		asset := testutil.CreateTestFixedDeposit(t, db, user.ID, 500000)

		_, err := svc.UpdateAsset(user.ID, asset.ID, AssetInput{Name: asset.Name})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateAsset(user.ID, "missing-id", AssetInput{Name: "x"})
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})
}

func TestDeleteAsset(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)
		asset := testutil.CreateTestFixedDeposit(t, db, user.ID, 500000)

		testutil.AssertNoError(t, svc.DeleteAsset(user.ID, asset.ID))

		_, err := svc.GetAssetByID(user.ID, asset.ID)
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})

	t.Run("other_users_asset_hidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		asset := testutil.CreateTestFixedDeposit(t, db, other.ID, 500000)

		err := svc.DeleteAsset(user.ID, asset.ID)
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})
}
