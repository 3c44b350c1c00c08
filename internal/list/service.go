package list

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/personal-lambda/internal/config"
	"github.com/saulo-duarte/personal-lambda/internal/docstore"
)

var (
	ErrNameRequired     = errors.New("list name is required")
	ErrItemNameRequired = errors.New("list name and item name are required")
	ErrItemRefRequired  = errors.New("an item id, name or index is required")
	ErrUpdatesRequired  = errors.New("updates are required")
)

type Service interface {
	All(ctx context.Context) ([]List, error)
	GetByName(ctx context.Context, name string) (*List, error)
	Create(ctx context.Context, name string, items []Item, parent *string) (*docstore.InsertResult, error)
	Delete(ctx context.Context, name string) (*docstore.DeleteResult, error)
	SetParent(ctx context.Context, name string, parent *string) (*docstore.UpdateResult, error)
	AddItem(ctx context.Context, listName string, item Item) (*docstore.UpdateResult, error)
	AddItems(ctx context.Context, listName string, items []Item) (*docstore.UpdateResult, error)
	UpdateItem(ctx context.Context, listName string, ref ItemRef, updates ItemPatch) (*docstore.UpdateResult, error)
	DeleteItem(ctx context.Context, listName string, ref ItemRef) (*docstore.UpdateResult, error)
	LinkParents(ctx context.Context, parent string, children []string) (*ParentLink, error)
	BackfillParents(ctx context.Context) (*docstore.UpdateResult, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) All(ctx context.Context) ([]List, error) {
	lists, err := s.repo.FindAll(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to fetch lists")
		return nil, err
	}
	return lists, nil
}

func (s *service) GetByName(ctx context.Context, name string) (*List, error) {
	log := config.WithContext(ctx).WithField("list", name)

	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	l, err := s.repo.FindByName(ctx, name)
	if err != nil {
		logFailure(log, err, "Failed to retrieve list")
		return nil, err
	}
	return l, nil
}

func (s *service) Create(ctx context.Context, name string, items []Item, parent *string) (*docstore.InsertResult, error) {
	log := config.WithContext(ctx).WithField("list", name)

	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	_, err := s.repo.FindByName(ctx, name)
	switch {
	case err == nil:
		log.Warn("List already exists")
		return nil, ErrListExists
	case !errors.Is(err, ErrListNotFound):
		log.WithError(err).Error("Failed to check for existing list")
		return nil, err
	}

	if items == nil {
		items = []Item{}
	}
	for i := range items {
		assignID(&items[i])
	}

	res, err := s.repo.Insert(ctx, &List{Name: name, Items: items, Parent: parent})
	if err != nil {
		logFailure(log, err, "Failed to create list")
		return nil, err
	}

	log.WithField("items", len(items)).Info("List created")
	return res, nil
}

func (s *service) Delete(ctx context.Context, name string) (*docstore.DeleteResult, error) {
	log := config.WithContext(ctx).WithField("list", name)

	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	res, err := s.repo.DeleteByName(ctx, name)
	if err != nil {
		logFailure(log, err, "Failed to delete list")
		return nil, err
	}

	log.Info("List deleted")
	return res, nil
}

// SetParent assigns parent as is; nil clears it.
func (s *service) SetParent(ctx context.Context, name string, parent *string) (*docstore.UpdateResult, error) {
	log := config.WithContext(ctx).WithField("list", name)

	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	res, err := s.repo.SetParent(ctx, name, parent)
	if err != nil {
		logFailure(log, err, "Failed to update list parent")
		return nil, err
	}
	return res, nil
}

func (s *service) AddItem(ctx context.Context, listName string, item Item) (*docstore.UpdateResult, error) {
	return s.AddItems(ctx, listName, []Item{item})
}

func (s *service) AddItems(ctx context.Context, listName string, items []Item) (*docstore.UpdateResult, error) {
	log := config.WithContext(ctx).WithField("list", listName)

	if strings.TrimSpace(listName) == "" || len(items) == 0 {
		return nil, ErrItemNameRequired
	}
	for i := range items {
		if strings.TrimSpace(items[i].Name) == "" {
			return nil, ErrItemNameRequired
		}
		assignID(&items[i])
	}

	res, err := s.repo.PushItems(ctx, listName, items)
	if err != nil {
		logFailure(log, err, "Failed to add items")
		return nil, err
	}

	log.WithField("items", len(items)).Info("Items added to list")
	return res, nil
}

func (s *service) UpdateItem(ctx context.Context, listName string, ref ItemRef, updates ItemPatch) (*docstore.UpdateResult, error) {
	log := config.WithContext(ctx).WithField("list", listName)

	if strings.TrimSpace(listName) == "" {
		return nil, ErrNameRequired
	}
	if err := checkRef(ref); err != nil {
		return nil, err
	}
	if updates.IsEmpty() {
		return nil, ErrUpdatesRequired
	}
	if ref.Index != nil && ref.ID == "" && ref.Name == "" && updates.ID == "" {
		updates.ID = uuid.NewString()
	}

	res, err := s.repo.UpdateItem(ctx, listName, ref, updates)
	if err != nil {
		logFailure(log, err, "Failed to update item")
		return nil, err
	}
	return res, nil
}

func (s *service) DeleteItem(ctx context.Context, listName string, ref ItemRef) (*docstore.UpdateResult, error) {
	log := config.WithContext(ctx).WithField("list", listName)

	if strings.TrimSpace(listName) == "" {
		return nil, ErrNameRequired
	}
	if err := checkRef(ref); err != nil {
		return nil, err
	}

	res, err := s.repo.DeleteItem(ctx, listName, ref)
	if err != nil {
		logFailure(log, err, "Failed to delete item")
		return nil, err
	}
	return res, nil
}

// LinkParents makes parent a top-level list, creating it empty when missing,
// and points every existing child at it. Children that do not exist yet are
// reported, not created.
func (s *service) LinkParents(ctx context.Context, parent string, children []string) (*ParentLink, error) {
	log := config.WithContext(ctx).WithField("parent", parent)

	if strings.TrimSpace(parent) == "" {
		return nil, ErrNameRequired
	}

	link := &ParentLink{Parent: parent, Linked: []string{}, Missing: []string{}}

	_, err := s.repo.SetParent(ctx, parent, nil)
	switch {
	case errors.Is(err, ErrListNotFound):
		if _, err := s.Create(ctx, parent, nil, nil); err != nil {
			return nil, err
		}
		link.Created = true
	case err != nil:
		log.WithError(err).Error("Failed to reset parent list")
		return nil, err
	}

	for _, child := range children {
		_, err := s.repo.SetParent(ctx, child, &parent)
		switch {
		case errors.Is(err, ErrListNotFound):
			link.Missing = append(link.Missing, child)
		case err != nil:
			log.WithError(err).WithField("list", child).Error("Failed to link child list")
			return link, err
		default:
			link.Linked = append(link.Linked, child)
		}
	}

	log.WithField("linked", len(link.Linked)).Info("Parent list linked")
	return link, nil
}

// BackfillParents gives every list without a parent field an explicit null.
func (s *service) BackfillParents(ctx context.Context) (*docstore.UpdateResult, error) {
	log := config.WithContext(ctx)

	res, err := s.repo.BackfillParents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to backfill list parents")
		return nil, err
	}

	log.WithField("modified", res.ModifiedCount).Info("List parents backfilled")
	return res, nil
}

func checkRef(ref ItemRef) error {
	if ref.IsZero() {
		return ErrItemRefRequired
	}
	if ref.ID == "" && ref.Name == "" && *ref.Index < 0 {
		return ErrItemNotFound
	}
	return nil
}

func assignID(it *Item) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
}

func logFailure(log logrus.FieldLogger, err error, msg string) {
	switch {
	case errors.Is(err, ErrListNotFound), errors.Is(err, ErrItemNotFound), errors.Is(err, ErrListOrItemNotFound), errors.Is(err, ErrListExists):
		log.WithError(err).Warn(msg)
	default:
		log.WithError(err).Error(msg)
	}
}
