package categories

import (
	"strings"

	"github.com/saveup-dev/saveup/internal/model"
)

// Service provides lookup and keyword matching over a category list.
type Service struct {
	categories []model.CategoryInfo
	byName     map[model.Category]model.CategoryInfo
}

// NewService creates a Service from categories in match order.
func NewService(categories []model.CategoryInfo) *Service {
	byName := make(map[model.Category]model.CategoryInfo, len(categories))
	for _, c := range categories {
		byName[c.Name] = c
	}
	return &Service{categories: categories, byName: byName}
}

// All returns all categories.
func (s *Service) All() []model.CategoryInfo {
	return s.categories
}

// Get returns a category by name.
func (s *Service) Get(name model.Category) (model.CategoryInfo, bool) {
	c, ok := s.byName[name]
	return c, ok
}

// Exists reports whether a category name is known.
func (s *Service) Exists(name model.Category) bool {
	_, ok := s.byName[name]
	return ok
}

// ByType returns all categories usually carrying the given type.
func (s *Service) ByType(t model.TransactionType) []model.CategoryInfo {
	var result []model.CategoryInfo
	for _, c := range s.categories {
		if c.Type == t {
			result = append(result, c)
		}
	}
	return result
}

// Guess returns the first category with a keyword contained in description,
// ignoring case, or Other.
func (s *Service) Guess(description string) model.Category {
	desc := strings.ToLower(description)
	for _, c := range s.categories {
		for _, kw := range c.Keywords {
			if strings.Contains(desc, kw) {
				return c.Name
			}
		}
	}
	return model.CategoryOther
}

var defaultService = NewService(Default())

// Guess matches description against the built-in categories.
func Guess(description string) model.Category {
	return defaultService.Guess(description)
}
