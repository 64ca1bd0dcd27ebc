package authz

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:authz_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("create authz service failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}
	return svc
}

func TestBootstrapBuiltinRolesCreatesFleetRoles(t *testing.T) {
	svc := setupAuthzTest(t)

	roles, err := svc.ListRoles()
	if err != nil {
		t.Fatalf("list roles failed: %v", err)
	}
	want := map[string]bool{
		"role:fleet_viewer": false,
		"role:dispatcher":   false,
		"role:support":      false,
	}
	for _, role := range roles {
		if _, ok := want[role]; ok {
			want[role] = true
		}
	}
	for role, found := range want {
		if !found {
			t.Fatalf("builtin role missing: %s", role)
		}
	}
}

func TestDispatcherCanManageOrdersViewerCannot(t *testing.T) {
	svc := setupAuthzTest(t)

	if err := svc.SetAdminRoles(1, []string{"dispatcher"}); err != nil {
		t.Fatalf("set dispatcher roles failed: %v", err)
	}
	if err := svc.SetAdminRoles(2, []string{"fleet_viewer"}); err != nil {
		t.Fatalf("set viewer roles failed: %v", err)
	}

	ok, err := svc.EnforceAdmin(1, "/api/v1/admin/orders", "POST")
	if err != nil {
		t.Fatalf("enforce dispatcher failed: %v", err)
	}
	if !ok {
		t.Fatalf("dispatcher should create orders")
	}

	ok, err = svc.EnforceAdmin(2, "/api/v1/admin/orders", "POST")
	if err != nil {
		t.Fatalf("enforce viewer failed: %v", err)
	}
	if ok {
		t.Fatalf("viewer must not create orders")
	}

	ok, err = svc.EnforceAdmin(2, "/api/v1/admin/orders", "GET")
	if err != nil {
		t.Fatalf("enforce viewer read failed: %v", err)
	}
	if !ok {
		t.Fatalf("viewer should read orders")
	}
}

func TestNormalizeObjectStripsAPIPrefix(t *testing.T) {
	if got := NormalizeObject("/api/v1/admin/orders"); got != "/admin/orders" {
		t.Fatalf("unexpected normalized object: %s", got)
	}
	if got := NormalizeObject("admin/drivers"); got != "/admin/drivers" {
		t.Fatalf("unexpected normalized object: %s", got)
	}
}
