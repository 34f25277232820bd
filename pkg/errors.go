// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Service katmanı bu sabit error'ları (gerekirse fmt.Errorf("%w: detay", ...)
// ile sarıp) döner; handler katmanı errors.Is ile yakalayıp HTTP status
// code'una çevirir. String karşılaştırması yerine sentinel error kullanmak
// wrap edilmiş hataların da doğru eşleşmesini sağlar.
package pkg

import "errors"

// Domain-level error'lar.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal error")
)
