package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/maizul/restaurant-api/internal/core/domain"
)

const menuNS = "maizul.menu_items"

func menuDoc(id string, category domain.Category, order int, available bool) bson.D {
	ts := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "category", Value: string(category)},
		{Key: "name_es", Value: "Plato"},
		{Key: "name_en", Value: "Dish"},
		{Key: "description_es", Value: ""},
		{Key: "description_en", Value: ""},
		{Key: "price", Value: 145.0},
		{Key: "image", Value: nil},
		{Key: "is_featured", Value: false},
		{Key: "is_available", Value: available},
		{Key: "sort_order", Value: order},
		{Key: "tags", Value: bson.A{"popular"}},
		{Key: "created_at", Value: ts},
		{Key: "updated_at", Value: ts},
	}
}

func TestMenuRepository_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes in store order", func(mt *mtest.T) {
		repo := NewMenuRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, menuNS, mtest.FirstBatch,
			menuDoc("m-1", domain.CategoryBreakfast, 1, true),
			menuDoc("m-2", domain.CategoryBreakfast, 2, true),
		))

		c := domain.CategoryBreakfast
		items, err := repo.List(context.Background(), domain.MenuFilter{Category: &c, AvailableOnly: true})
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if len(items) != 2 || items[0].ID != "m-1" || items[1].SortOrder != 2 {
			t.Fatalf("unexpected items: %+v", items)
		}
		if items[0].Image != nil {
			t.Fatalf("expected nil image, got %v", *items[0].Image)
		}
		if len(items[0].Tags) != 1 || items[0].Tags[0] != "popular" {
			t.Fatalf("unexpected tags: %v", items[0].Tags)
		}

		started := mt.GetStartedEvent()
		if started == nil || started.CommandName != "find" {
			t.Fatalf("expected a find command, got %+v", started)
		}
		filter := started.Command.Lookup("filter").Document()
		if got := filter.Lookup("category").StringValue(); got != "breakfast" {
			t.Fatalf("expected category filter, got %q", got)
		}
		if !filter.Lookup("is_available").Boolean() {
			t.Fatalf("expected availability filter")
		}
		if limit := started.Command.Lookup("limit").AsInt64(); limit != maxMenuItemsListed {
			t.Fatalf("expected limit %d, got %d", maxMenuItemsListed, limit)
		}
	})

	mt.Run("empty", func(mt *mtest.T) {
		repo := NewMenuRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, menuNS, mtest.FirstBatch))

		items, err := repo.List(context.Background(), domain.MenuFilter{})
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", items)
		}
	})
}

func TestMenuRepository_Get(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewMenuRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, menuNS, mtest.FirstBatch,
			menuDoc("m-1", domain.CategoryDinner, 1, false)))

		item, err := repo.Get(context.Background(), "m-1")
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if item.Category != domain.CategoryDinner || item.IsAvailable || item.Price != 145 {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewMenuRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, menuNS, mtest.FirstBatch))

		if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrMenuItemNotFound) {
			t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
		}
	})
}

func TestMenuRepository_Update(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("refreshes updated_at", func(mt *mtest.T) {
		repo := NewMenuRepository(mt.DB)
		fixed := time.Date(2026, 5, 5, 5, 5, 5, 0, time.UTC)
		repo.now = func() time.Time { return fixed }
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key: "value", Value: menuDoc("m-1", domain.CategoryLunch, 3, true),
		}))

		price := 99.5
		if _, err := repo.Update(context.Background(), "m-1", domain.MenuItemPatch{Price: &price}); err != nil {
			t.Fatalf("Update returned error: %v", err)
		}

		started := mt.GetStartedEvent()
		set := started.Command.Lookup("update").Document().Lookup("$set").Document()
		if got := set.Lookup("price").Double(); got != 99.5 {
			t.Fatalf("expected price in $set, got %v", got)
		}
		if got := set.Lookup("updated_at").Time(); !got.Equal(fixed) {
			t.Fatalf("expected updated_at %s, got %s", fixed, got)
		}
		if _, err := set.LookupErr("name_es"); err == nil {
			t.Fatalf("unpatched fields must not be written")
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewMenuRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		avail := false
		if _, err := repo.Update(context.Background(), "missing", domain.MenuItemPatch{IsAvailable: &avail}); !errors.Is(err, domain.ErrMenuItemNotFound) {
			t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
		}
	})
}

func TestMenuRepository_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewMenuRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrMenuItemNotFound) {
			t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
		}
	})
}

func TestMenuRepository_Reorder(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("skips unknown ids", func(mt *mtest.T) {
		repo := NewMenuRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 2},
			bson.E{Key: "nModified", Value: 2},
		))

		matched, err := repo.Reorder(context.Background(), []domain.ReorderEntry{
			{ID: "m-1", SortOrder: 2},
			{ID: "gone", SortOrder: 5},
			{ID: "m-2", SortOrder: 1},
		})
		if err != nil {
			t.Fatalf("Reorder returned error: %v", err)
		}
		if matched != 2 {
			t.Fatalf("expected 2 matched, got %d", matched)
		}

		started := mt.GetStartedEvent()
		if started.CommandName != "update" {
			t.Fatalf("expected one update command, got %s", started.CommandName)
		}
		if ordered := started.Command.Lookup("ordered").Boolean(); ordered {
			t.Fatalf("expected unordered bulk write")
		}
	})

	mt.Run("empty is a no-op", func(mt *mtest.T) {
		repo := NewMenuRepository(mt.DB)

		matched, err := repo.Reorder(context.Background(), nil)
		if err != nil || matched != 0 {
			t.Fatalf("expected no-op, got %d, %v", matched, err)
		}
		if ev := mt.GetStartedEvent(); ev != nil {
			t.Fatalf("expected no command, got %s", ev.CommandName)
		}
	})
}
