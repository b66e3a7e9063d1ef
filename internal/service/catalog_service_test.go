package service

import (
	"context"
	"math"
	"testing"

	"connectrpc.com/connect"

	v1 "github.com/mmynk/agencydesk/pkg/api/v1"
)

func TestPreviewPrice(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	c.finance.AddCost(ctx, connect.NewRequest(&v1.AddCostRequest{Cost: v1.Cost{Name: "Sueldos", Amount: 1000000}}))

	resp, err := c.catalog.PreviewPrice(ctx, connect.NewRequest(&v1.PreviewPriceRequest{Hours: 10, Margin: 40}))
	if err != nil {
		t.Fatalf("PreviewPrice failed: %v", err)
	}
	if resp.Msg.Price != 104167 || resp.Msg.BaseCost != 62500 || resp.Msg.Tier != "medium" {
		t.Errorf("preview: %+v", resp.Msg)
	}

	_, err = c.catalog.PreviewPrice(ctx, connect.NewRequest(&v1.PreviewPriceRequest{Hours: 10, Margin: 100}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestListServices_PriceIsFrozen(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	c.finance.AddCost(ctx, connect.NewRequest(&v1.AddCostRequest{Cost: v1.Cost{Name: "Sueldos", Amount: 1000000}}))
	saved, err := c.catalog.SaveService(ctx, connect.NewRequest(&v1.SaveServiceRequest{Service: v1.Service{
		Name: "Landing page", Hours: 10, Margin: 40,
	}}))
	if err != nil {
		t.Fatalf("SaveService failed: %v", err)
	}
	if saved.Msg.Service.Price != 104167 {
		t.Fatalf("price: expected 104167, got %d", saved.Msg.Service.Price)
	}

	list, err := c.catalog.ListServices(ctx, connect.NewRequest(&v1.ListServicesRequest{}))
	if err != nil {
		t.Fatalf("ListServices failed: %v", err)
	}
	svc := list.Msg.Services[0]
	if math.Abs(svc.RealizedMargin-40) > 0.01 || svc.Tier != "medium" {
		t.Errorf("before cost change: margin %.4f, tier %s", svc.RealizedMargin, svc.Tier)
	}

	// Doubling fixed costs doubles the BEP rate; the stored price stays.
	c.finance.AddCost(ctx, connect.NewRequest(&v1.AddCostRequest{Cost: v1.Cost{Name: "Arriendo", Amount: 1000000}}))

	list, err = c.catalog.ListServices(ctx, connect.NewRequest(&v1.ListServicesRequest{}))
	if err != nil {
		t.Fatalf("ListServices failed: %v", err)
	}
	svc = list.Msg.Services[0]
	if svc.Price != 104167 {
		t.Errorf("price changed to %d", svc.Price)
	}
	if svc.RealizedMargin >= 0 || svc.Tier != "low" {
		t.Errorf("after cost change: margin %.4f, tier %s", svc.RealizedMargin, svc.Tier)
	}
}

func TestDeleteService(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	saved, err := c.catalog.SaveService(ctx, connect.NewRequest(&v1.SaveServiceRequest{Service: v1.Service{Name: "Asesoría", Hours: 2, Margin: 30}}))
	if err != nil {
		t.Fatalf("SaveService failed: %v", err)
	}

	if _, err := c.catalog.DeleteService(ctx, connect.NewRequest(&v1.DeleteServiceRequest{ServiceID: saved.Msg.Service.ID})); err != nil {
		t.Fatalf("DeleteService failed: %v", err)
	}
	_, err = c.catalog.DeleteService(ctx, connect.NewRequest(&v1.DeleteServiceRequest{ServiceID: saved.Msg.Service.ID}))
	assertCode(t, err, connect.CodeNotFound)
}
