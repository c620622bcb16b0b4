package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/varlikapp/varlik/internal/common"
	"github.com/varlikapp/varlik/internal/models"
	"github.com/varlikapp/varlik/internal/storage/badger"
)

// memoryKV is an in-memory KeyValueStorage for tests.
type memoryKV struct {
	mu     sync.Mutex
	data   map[string]string
	sets   int
	getErr error
	setErr error
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return "", fmt.Errorf("key '%s': %w", key, badger.ErrNotFound)
	}
	return v, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *memoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryKV) Close() error { return nil }

func (m *memoryKV) setCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}

func newTestStore(t *testing.T) (*Store, *memoryKV) {
	t.Helper()
	kv := newMemoryKV()
	store := NewStore(kv, common.NewSilentLogger())
	t.Cleanup(store.Flush)
	return store, kv
}

func TestAddAsset_OverwritesCallerID(t *testing.T) {
	store, _ := newTestStore(t)

	stored := store.AddAsset(models.Asset{
		ID:       "client-supplied",
		Type:     models.AssetTypeLiquid,
		Name:     "X",
		Value:    1,
		Currency: "USD",
	})

	if stored.ID == "client-supplied" || stored.ID == "" {
		t.Errorf("store must assign its own id, got %q", stored.ID)
	}
	book := store.Book()
	if len(book.Assets) != 1 {
		t.Fatalf("expected exactly one asset, got %d", len(book.Assets))
	}
	if book.Assets[0].ID != stored.ID {
		t.Errorf("stored id mismatch: %q vs %q", book.Assets[0].ID, stored.ID)
	}
}

func TestAdd_IDsAreUnique(t *testing.T) {
	store, _ := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		a := store.AddAsset(models.Asset{Name: "a"})
		if seen[a.ID] {
			t.Fatalf("duplicate id generated: %s", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestAdd_AcceptsUnvalidatedValues(t *testing.T) {
	store, _ := newTestStore(t)

	// Negative numbers, empty names, malformed dates are accepted as-is.
	store.AddAsset(models.Asset{Value: -500})
	store.AddLiability(models.Liability{DueDate: "whenever"})
	store.AddReceivable(models.Receivable{Amount: -1})
	store.AddInstallment(models.Installment{EndDate: "soonish", RemainingMonths: -3})

	book := store.Book()
	if book.Assets[0].Value != -500 {
		t.Errorf("negative value must be stored untouched, got %v", book.Assets[0].Value)
	}
	if book.Installments[0].RemainingMonths != -3 {
		t.Errorf("negative months must be stored untouched, got %d", book.Installments[0].RemainingMonths)
	}
}

func TestUpdateLiability_PartialMergeAndMissingID(t *testing.T) {
	store, _ := newTestStore(t)

	l := store.AddLiability(models.Liability{
		Type:        models.LiabilityTypeCreditCard,
		Name:        "Card",
		TotalLimit:  20000,
		CurrentDebt: 100,
		DueDate:     "26th",
	})

	before := store.Book()

	// Missing id: collection unchanged
	debt := models.Amount(999)
	store.UpdateLiability("nonexistent", models.LiabilityPatch{CurrentDebt: &debt})
	if !reflect.DeepEqual(store.Book(), before) {
		t.Error("update with unknown id must leave the book unchanged")
	}

	// Existing id: only patched field changes
	store.UpdateLiability(l.ID, models.LiabilityPatch{CurrentDebt: &debt})
	got := store.Book().Liabilities[0]
	if got.CurrentDebt != 999 {
		t.Errorf("expected debt 999, got %v", got.CurrentDebt)
	}
	if got.Name != "Card" || got.Type != models.LiabilityTypeCreditCard || got.TotalLimit != 20000 || got.DueDate != "26th" {
		t.Errorf("unpatched fields must survive: %+v", got)
	}
}

func TestRemove_Idempotent(t *testing.T) {
	store, _ := newTestStore(t)

	a := store.AddAsset(models.Asset{Name: "one"})
	b := store.AddAsset(models.Asset{Name: "two"})

	store.RemoveAsset(a.ID)
	after := store.Book()
	if len(after.Assets) != 1 || after.Assets[0].ID != b.ID {
		t.Fatalf("unexpected state after first removal: %+v", after.Assets)
	}

	store.RemoveAsset(a.ID) // second removal of same id
	if !reflect.DeepEqual(store.Book(), after) {
		t.Error("second removal must be a no-op")
	}
}

func TestRemove_PreservesOrder(t *testing.T) {
	store, _ := newTestStore(t)

	first := store.AddReceivable(models.Receivable{Debtor: "a"})
	middle := store.AddReceivable(models.Receivable{Debtor: "b"})
	last := store.AddReceivable(models.Receivable{Debtor: "c"})

	store.RemoveReceivable(middle.ID)

	got := store.Book().Receivables
	if len(got) != 2 || got[0].ID != first.ID || got[1].ID != last.ID {
		t.Errorf("insertion order must be preserved: %+v", got)
	}
}

func TestPersistence_WriteThrough(t *testing.T) {
	store, kv := newTestStore(t)

	store.AddAsset(models.Asset{Type: models.AssetTypeLiquid, Name: "Cash", Value: 300, Currency: "TRY"})
	store.Flush()

	raw, err := kv.Get(context.Background(), BookKey)
	if err != nil {
		t.Fatalf("expected persisted book: %v", err)
	}
	var env models.BookEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		t.Fatalf("unmarshal persisted book: %v", err)
	}
	if env.Version != models.BookSchemaVersion {
		t.Errorf("expected schema version %d, got %d", models.BookSchemaVersion, env.Version)
	}
	if len(env.State.Assets) != 1 || env.State.Assets[0].Name != "Cash" {
		t.Errorf("persisted state mismatch: %+v", env.State)
	}
}

func TestPersistence_ConvergesToNewestSnapshot(t *testing.T) {
	store, kv := newTestStore(t)

	a := store.AddAsset(models.Asset{Name: "x"})
	name := "y"
	store.UpdateAsset(a.ID, models.AssetPatch{Name: &name})
	store.RemoveAsset(a.ID)
	store.Flush()

	// Superseded writes may be skipped, but at least one write lands and
	// storage ends on the newest snapshot.
	if n := kv.setCount(); n < 1 || n > 3 {
		t.Errorf("expected between 1 and 3 writes, got %d", n)
	}
	raw, err := kv.Get(context.Background(), BookKey)
	if err != nil {
		t.Fatalf("expected persisted book: %v", err)
	}
	var env models.BookEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		t.Fatalf("unmarshal persisted book: %v", err)
	}
	if len(env.State.Assets) != 0 {
		t.Errorf("storage must converge on the post-removal state: %+v", env.State.Assets)
	}
}

func TestPersistence_NoWriteOnNoOpMutation(t *testing.T) {
	store, kv := newTestStore(t)

	store.RemoveAsset("missing")
	store.UpdateAsset("missing", models.AssetPatch{})
	store.Flush()

	if kv.setCount() != 0 {
		t.Errorf("no-op mutations must not schedule writes, got %d", kv.setCount())
	}
}

func TestPersistence_WriteFailureDoesNotRollBack(t *testing.T) {
	store, kv := newTestStore(t)
	kv.setErr = errors.New("disk full")

	store.AddAsset(models.Asset{Name: "kept"})
	store.Flush()

	if len(store.Book().Assets) != 1 {
		t.Error("in-memory mutation must stand even when the write fails")
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	kv := newMemoryKV()
	logger := common.NewSilentLogger()

	first := NewStore(kv, logger)
	first.AddAsset(models.Asset{Type: models.AssetTypeLiquid, Name: "Cash", Value: 300, Currency: "TRY"})
	first.AddLiability(models.Liability{Type: models.LiabilityTypeCreditCard, Name: "Card", CurrentDebt: 100})
	first.AddReceivable(models.Receivable{Debtor: "Ali", Amount: 50})
	first.AddInstallment(models.Installment{Name: "Phone", InstallmentAmount: 900, RemainingMonths: 10})
	first.Flush()

	second := NewStore(kv, logger)
	second.Load(context.Background())

	if !reflect.DeepEqual(second.Book(), first.Book()) {
		t.Errorf("rehydrated book differs:\n got %+v\nwant %+v", second.Book(), first.Book())
	}
}

func TestLoad_MissingKeyLeavesEmptyState(t *testing.T) {
	store, _ := newTestStore(t)
	store.Load(context.Background())

	book := store.Book()
	if len(book.Assets)+len(book.Liabilities)+len(book.Receivables)+len(book.Installments) != 0 {
		t.Errorf("expected empty book, got %+v", book)
	}
}

func TestLoad_FailuresAreSwallowed(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv, common.NewSilentLogger())

	// Backend error
	kv.getErr = errors.New("backend down")
	store.Load(context.Background())
	if len(store.Book().Assets) != 0 {
		t.Error("load failure must leave default state")
	}
	kv.getErr = nil

	// Corrupt payload
	kv.data[BookKey] = "{not json"
	store.Load(context.Background())
	if len(store.Book().Assets) != 0 {
		t.Error("corrupt payload must leave default state")
	}

	// Schema mismatch
	kv.data[BookKey] = `{"version":99,"state":{"assets":[{"id":"a"}]}}`
	store.Load(context.Background())
	if len(store.Book().Assets) != 0 {
		t.Error("schema mismatch must leave default state")
	}
}

func TestBook_ReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t)
	store.AddAsset(models.Asset{Name: "original"})

	book := store.Book()
	book.Assets[0].Name = "mutated"

	if store.Book().Assets[0].Name != "original" {
		t.Error("Book must return a copy, not internal state")
	}
}

func TestConcurrentMutations(t *testing.T) {
	store, _ := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.AddAsset(models.Asset{Name: "a", Value: 1})
			store.AddLiability(models.Liability{CurrentDebt: 1})
		}()
	}
	wg.Wait()
	store.Flush()

	book := store.Book()
	if len(book.Assets) != 50 || len(book.Liabilities) != 50 {
		t.Errorf("expected 50/50, got %d/%d", len(book.Assets), len(book.Liabilities))
	}
}
