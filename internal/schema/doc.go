// Package schema holds the field tables for every order entity.
//
// Table contents are a wire contract in both directions: source keys must
// match the upstream backend exactly and target names are what callers see.
// Address and the order-history (summary) family use UPPER keys; everything
// under order detail uses lower keys.
//
// Tables are built once at package init and are read-only afterwards, so they
// are safe to share between goroutines.
package schema
