// Package catalog holds the menu: categories and the menu items that price cart lines.
package catalog
