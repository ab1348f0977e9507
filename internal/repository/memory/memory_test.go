// FilePath: internal/repository/memory/memory_test.go
package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gaugeworks/levelhub/internal/models"
	"github.com/gaugeworks/levelhub/internal/repository"
)

func TestSessionRepo_PutGetDelete(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	if err := repo.Put(ctx, "tok-1", "device-1", time.Hour); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	deviceID, err := repo.Get(ctx, "tok-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if deviceID != "device-1" {
		t.Errorf("Get() = %q, want %q", deviceID, "device-1")
	}

	if err := repo.Delete(ctx, "tok-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.Get(ctx, "tok-1"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}

	// Deleting an absent token is not an error.
	if err := repo.Delete(ctx, "tok-1"); err != nil {
		t.Errorf("second Delete() error = %v, want nil", err)
	}
}

func TestSessionRepo_Put_Overwrites(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	repo.Put(ctx, "tok", "device-a", time.Hour) //nolint:errcheck // test setup
	repo.Put(ctx, "tok", "device-b", time.Hour) //nolint:errcheck // test setup

	deviceID, err := repo.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if deviceID != "device-b" {
		t.Errorf("Get() = %q, want the overwritten association %q", deviceID, "device-b")
	}
}

func TestSessionRepo_TTLExpiry(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	base := time.Now()
	repo.now = func() time.Time { return base }

	if err := repo.Put(ctx, "tok", "device-1", time.Hour); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	repo.now = func() time.Time { return base.Add(30 * time.Minute) }
	if _, err := repo.Get(ctx, "tok"); err != nil {
		t.Fatalf("Get() before expiry error = %v", err)
	}

	repo.now = func() time.Time { return base.Add(2 * time.Hour) }
	if _, err := repo.Get(ctx, "tok"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Get() after expiry error = %v, want ErrNotFound", err)
	}
}

func TestReadingRepo_AppendListOrder(t *testing.T) {
	repo := NewReadingRepository()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		reading := models.Reading{ID: "rd", Time: int64(i), Event: i, Level: float64(i)}
		if err := repo.Append(ctx, "dev", reading); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	readings, err := repo.List(ctx, "dev", 0, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(readings) != 4 {
		t.Fatalf("List() returned %d readings, want 4", len(readings))
	}
	for i, reading := range readings {
		if reading.Event != i {
			t.Errorf("readings[%d].Event = %d, want %d", i, reading.Event, i)
		}
		if reading.DeviceID != "dev" {
			t.Errorf("readings[%d].DeviceID = %q, want %q", i, reading.DeviceID, "dev")
		}
	}
}

func TestReadingRepo_List_OffsetLimit(t *testing.T) {
	repo := NewReadingRepository()
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		repo.Append(ctx, "dev", models.Reading{Event: i}) //nolint:errcheck // test setup
	}

	tests := []struct {
		name       string
		offset     int64
		limit      int64
		wantEvents []int
	}{
		{"full log", 0, 0, []int{0, 1, 2, 3, 4, 5}},
		{"first page", 0, 2, []int{0, 1}},
		{"middle page", 2, 2, []int{2, 3}},
		{"limit past end", 4, 10, []int{4, 5}},
		{"offset past end", 10, 2, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readings, err := repo.List(ctx, "dev", tt.offset, tt.limit)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(readings) != len(tt.wantEvents) {
				t.Fatalf("List() returned %d readings, want %d", len(readings), len(tt.wantEvents))
			}
			for i, want := range tt.wantEvents {
				if readings[i].Event != want {
					t.Errorf("readings[%d].Event = %d, want %d", i, readings[i].Event, want)
				}
			}
		})
	}
}

func TestReadingRepo_List_UnknownDevice(t *testing.T) {
	repo := NewReadingRepository()

	readings, err := repo.List(context.Background(), "unknown", 0, 0)
	if err != nil {
		t.Fatalf("List() error = %v, want nil", err)
	}
	if len(readings) != 0 {
		t.Errorf("List() returned %d readings for unknown device, want 0", len(readings))
	}
}

func TestReadingRepo_Trim(t *testing.T) {
	repo := NewReadingRepository()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		repo.Append(ctx, "dev", models.Reading{Event: i}) //nolint:errcheck // test setup
	}

	if err := repo.Trim(ctx, "dev", 3); err != nil {
		t.Fatalf("Trim() error = %v", err)
	}

	readings, err := repo.List(ctx, "dev", 0, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(readings) != 3 {
		t.Fatalf("List() after trim returned %d readings, want 3", len(readings))
	}
	// The newest entries survive.
	for i, want := range []int{7, 8, 9} {
		if readings[i].Event != want {
			t.Errorf("readings[%d].Event = %d, want %d", i, readings[i].Event, want)
		}
	}

	// Trimming below the cap or with no cap is a no-op.
	if err := repo.Trim(ctx, "dev", 5); err != nil {
		t.Fatalf("Trim() error = %v", err)
	}
	if err := repo.Trim(ctx, "dev", 0); err != nil {
		t.Fatalf("Trim(0) error = %v", err)
	}
	readings, _ = repo.List(ctx, "dev", 0, 0)
	if len(readings) != 3 {
		t.Errorf("List() returned %d readings, want 3 unchanged", len(readings))
	}
}

func TestReadingRepo_Devices(t *testing.T) {
	repo := NewReadingRepository()
	ctx := context.Background()

	repo.Append(ctx, "dev-a", models.Reading{}) //nolint:errcheck // test setup
	repo.Append(ctx, "dev-b", models.Reading{}) //nolint:errcheck // test setup

	devices, err := repo.Devices(ctx)
	if err != nil {
		t.Fatalf("Devices() error = %v", err)
	}
	if len(devices) != 2 {
		t.Errorf("Devices() returned %d ids, want 2", len(devices))
	}
}
