package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory or RestoreCategory")

const maxTitleLength = 255

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

type Category struct {
	id    kernel.ID
	slug  string
	title string

	isConstructed bool
}

func NewCategory(slug, title string) (*Category, error) {
	c := &Category{isConstructed: true}
	if err := errors.Join(c.setSlug(slug), c.setTitle(title)); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCategory rebuilds a persisted category.
func RestoreCategory(id kernel.ID, slug, title string) (*Category, error) {
	c, err := NewCategory(slug, title)
	if err != nil {
		return nil, err
	}
	if err = c.SetID(id); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() kernel.ID { return c.id }
func (c *Category) Slug() string  { return c.slug }
func (c *Category) Title() string { return c.title }

// SetID stores the identity assigned by the store. It can only be set once.
func (c *Category) SetID(id kernel.ID) error {
	if c.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", errors.New("identity already assigned"))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setSlug(slug string) error {
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	if !slugPattern.MatchString(slug) {
		return errs.NewValueIsInvalidErrorWithCause("slug",
			fmt.Errorf("%q may only contain letters, numbers, underscores or hyphens", slug))
	}
	c.slug = slug
	return nil
}

func (c *Category) setTitle(title string) error {
	title, err := validateTitle(title)
	if err != nil {
		return err
	}
	c.title = title
	return nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", errs.NewValueIsRequiredError("title")
	}
	if n := utf8.RuneCountInString(title); n > maxTitleLength {
		return "", errs.NewValueIsOutOfRangeError("title length", n, 1, maxTitleLength)
	}
	return title, nil
}
