package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	v1 "github.com/mmynk/agencydesk/pkg/api/v1"
)

func TestAddCostAndSummary(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	for _, cost := range []v1.Cost{
		{Name: "Arriendo", Amount: 800000, Type: "Fijo", Category: "Oficina"},
		{Name: "Software", Amount: 200000},
		{Name: "Freelance", Amount: 300000, Type: "Variable"},
	} {
		resp, err := c.finance.AddCost(ctx, connect.NewRequest(&v1.AddCostRequest{Cost: cost}))
		if err != nil {
			t.Fatalf("AddCost failed: %v", err)
		}
		if resp.Msg.Cost.ID == "" {
			t.Error("expected non-empty cost ID")
		}
	}

	resp, err := c.finance.GetSummary(ctx, connect.NewRequest(&v1.GetSummaryRequest{}))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	sum := resp.Msg.Summary

	if sum.TotalCosts != 1300000 {
		t.Errorf("total: expected 1300000, got %d", sum.TotalCosts)
	}
	if sum.FixedCosts != 1000000 || sum.VariableCosts != 300000 {
		t.Errorf("fixed/variable: got %d/%d", sum.FixedCosts, sum.VariableCosts)
	}
	if sum.BEPRounded != 6250 {
		t.Errorf("BEP: expected 6250, got %d", sum.BEPRounded)
	}
	if sum.AnnualProjection != 15600000 {
		t.Errorf("annual projection: expected 15600000, got %d", sum.AnnualProjection)
	}
	if sum.DepreciationSource != "ledger" {
		t.Errorf("depreciation source: expected ledger, got %s", sum.DepreciationSource)
	}
}

func TestDeleteCost_NotFound(t *testing.T) {
	c := setupTestServer(t)

	_, err := c.finance.DeleteCost(context.Background(), connect.NewRequest(&v1.DeleteCostRequest{CostID: "nonexistent-id"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestImportCosts(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	text := "Arriendo\t$450.000\tFijo\tOficina\n" +
		"sin monto\t\tFijo\n" +
		"Community manager\t350.000\tvariable\n"

	resp, err := c.finance.ImportCosts(ctx, connect.NewRequest(&v1.ImportCostsRequest{Text: text}))
	if err != nil {
		t.Fatalf("ImportCosts failed: %v", err)
	}
	if len(resp.Msg.Costs) != 2 {
		t.Fatalf("expected 2 imported costs, got %d", len(resp.Msg.Costs))
	}
	if got := resp.Msg.Costs[0]; got.Amount != 450000 || got.Category != "Oficina" {
		t.Errorf("first cost: %+v", got)
	}
	if got := resp.Msg.Costs[1]; got.Type != "Variable" || got.Category != "General" {
		t.Errorf("second cost: %+v", got)
	}

	list, err := c.finance.ListCosts(ctx, connect.NewRequest(&v1.ListCostsRequest{}))
	if err != nil {
		t.Fatalf("ListCosts failed: %v", err)
	}
	if len(list.Msg.Costs) != 2 {
		t.Errorf("ledger: expected 2 costs, got %d", len(list.Msg.Costs))
	}
}

func TestAssetsAndDepreciation(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	saved, err := c.finance.SaveAsset(ctx, connect.NewRequest(&v1.SaveAssetRequest{Asset: v1.Asset{
		Name:         "MacBook Pro",
		PurchaseDate: "2023-03-10",
		InitialValue: 1800000,
		UsefulLife:   3,
	}}))
	if err != nil {
		t.Fatalf("SaveAsset failed: %v", err)
	}
	asset := saved.Msg.Asset
	if asset.MonthlyDepreciation != 50000 || asset.AnnualDepreciation != 600000 {
		t.Errorf("depreciation: got %d monthly, %d annual", asset.MonthlyDepreciation, asset.AnnualDepreciation)
	}
	if asset.CurrentValue <= 1100000 || asset.CurrentValue >= 1300000 {
		t.Errorf("current value after about a year: got %d", asset.CurrentValue)
	}

	dep, err := c.finance.AddAssetDepreciation(ctx, connect.NewRequest(&v1.AddAssetDepreciationRequest{AssetID: asset.ID}))
	if err != nil {
		t.Fatalf("AddAssetDepreciation failed: %v", err)
	}
	if dep.Msg.Cost.Name != "Depreciación: MacBook Pro" || dep.Msg.Cost.Amount != 50000 || !dep.Msg.Cost.IsAsset {
		t.Errorf("depreciation line: %+v", dep.Msg.Cost)
	}
	if dep.Msg.Cost.AssetID != asset.ID {
		t.Errorf("depreciation line not linked: %q", dep.Msg.Cost.AssetID)
	}

	t.Run("invalid assets", func(t *testing.T) {
		_, err := c.finance.SaveAsset(ctx, connect.NewRequest(&v1.SaveAssetRequest{Asset: v1.Asset{
			Name: "Sin vida útil", InitialValue: 1000, UsefulLife: 0,
		}}))
		assertCode(t, err, connect.CodeInvalidArgument)

		_, err = c.finance.SaveAsset(ctx, connect.NewRequest(&v1.SaveAssetRequest{Asset: v1.Asset{
			Name: "Fecha rara", PurchaseDate: "10/03/2024", InitialValue: 1000, UsefulLife: 1,
		}}))
		assertCode(t, err, connect.CodeInvalidArgument)

		_, err = c.finance.AddAssetDepreciation(ctx, connect.NewRequest(&v1.AddAssetDepreciationRequest{}))
		assertCode(t, err, connect.CodeInvalidArgument)

		_, err = c.finance.AddAssetDepreciation(ctx, connect.NewRequest(&v1.AddAssetDepreciationRequest{AssetID: "ghost"}))
		assertCode(t, err, connect.CodeNotFound)
	})

	if _, err := c.finance.DeleteAsset(ctx, connect.NewRequest(&v1.DeleteAssetRequest{AssetID: asset.ID})); err != nil {
		t.Fatalf("DeleteAsset failed: %v", err)
	}
	list, _ := c.finance.ListAssets(ctx, connect.NewRequest(&v1.ListAssetsRequest{}))
	if len(list.Msg.Assets) != 0 {
		t.Errorf("expected empty registry, got %d assets", len(list.Msg.Assets))
	}
}

func TestCashFlow(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	c.finance.AddCost(ctx, connect.NewRequest(&v1.AddCostRequest{Cost: v1.Cost{Name: "Arriendo", Amount: 500000}}))
	if _, err := c.finance.RecordMonthlySale(ctx, connect.NewRequest(&v1.RecordMonthlySaleRequest{
		Sale: v1.MonthlySale{Year: 2024, Month: 0, Sales: 1200000},
	})); err != nil {
		t.Fatalf("RecordMonthlySale failed: %v", err)
	}

	_, err := c.finance.RecordMonthlySale(ctx, connect.NewRequest(&v1.RecordMonthlySaleRequest{
		Sale: v1.MonthlySale{Year: 2024, Month: 12, Sales: 1},
	}))
	assertCode(t, err, connect.CodeInvalidArgument)

	resp, err := c.finance.GetCashFlow(ctx, connect.NewRequest(&v1.GetCashFlowRequest{}))
	if err != nil {
		t.Fatalf("GetCashFlow failed: %v", err)
	}
	if resp.Msg.Year != 2024 || len(resp.Msg.Months) != 12 {
		t.Fatalf("cash flow: year %d, %d months", resp.Msg.Year, len(resp.Msg.Months))
	}
	jan, feb := resp.Msg.Months[0], resp.Msg.Months[1]
	if jan.Label != "Ene" || jan.Income != 1200000 || jan.Profit != 700000 {
		t.Errorf("january: %+v", jan)
	}
	if feb.Income != 0 || feb.Profit != -500000 {
		t.Errorf("february: %+v", feb)
	}
}

func TestBreakEvenCurve(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	c.finance.AddCost(ctx, connect.NewRequest(&v1.AddCostRequest{Cost: v1.Cost{Name: "Arriendo", Amount: 800000}}))

	resp, err := c.finance.GetBreakEvenCurve(ctx, connect.NewRequest(&v1.GetBreakEvenCurveRequest{Steps: 4}))
	if err != nil {
		t.Fatalf("GetBreakEvenCurve failed: %v", err)
	}
	points := resp.Msg.Points
	if len(points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(points))
	}
	if points[0].Revenue != 0 || points[0].Costs != 800000 {
		t.Errorf("first point: %+v", points[0])
	}
	if last := points[4]; last.Hours != 160 || last.Revenue != 1200000 {
		t.Errorf("last point: %+v", last)
	}
}
