// Copyright 2026 The ikpagrid Authors
// SPDX-License-Identifier: MIT

// Package catalog holds the explanation catalog: the static content shown
// when a user clicks an IKPA metric column. Keys form a closed, enumerated
// set with an explicit Unresolved variant; a Catalog is immutable once built.
package catalog

import (
	"fmt"
	"slices"
)

// Key identifies one explanation entry.
type Key int

// Known explanation keys. Unresolved is the zero value and never has an entry.
const (
	Unresolved Key = iota
	RevisiDIPA
	DeviasiHalamanIII
	PenyerapanAnggaran
	BelanjaKontraktual
	PenyelesaianTagihan
	PengelolaanUPTUP
	CapaianOutput
	DispensasiSPM
	KualitasPerencanaan
	KualitasPelaksanaan
	KualitasHasil
	KonversiBobot
	NilaiAkhirAspek    // synthetic: reached only through Resolve
	NilaiAkhirKomponen // synthetic: reached only through Resolve
)

// keyNames maps each key to its canonical name. For non-synthetic keys the
// canonical name is also the literal column header.
var keyNames = map[Key]string{
	Unresolved:          "unresolved",
	RevisiDIPA:          "Revisi DIPA",
	DeviasiHalamanIII:   "Deviasi Halaman III DIPA",
	PenyerapanAnggaran:  "Penyerapan Anggaran",
	BelanjaKontraktual:  "Belanja Kontraktual",
	PenyelesaianTagihan: "Penyelesaian Tagihan",
	PengelolaanUPTUP:    "Pengelolaan UP dan TUP",
	CapaianOutput:       "Capaian Output",
	DispensasiSPM:       "Dispensasi SPM (Pengurang)",
	KualitasPerencanaan: "Kualitas Perencanaan Anggaran",
	KualitasPelaksanaan: "Kualitas Pelaksanaan Anggaran",
	KualitasHasil:       "Kualitas Hasil Pelaksanaan Anggaran",
	KonversiBobot:       "Konversi Bobot",
	NilaiAkhirAspek:     "Nilai Akhir (Aspek)",
	NilaiAkhirKomponen:  "Nilai Akhir (Komponen)",
}

// AllKeys returns every key that can carry an entry, in declaration order.
func AllKeys() []Key {
	keys := make([]Key, 0, len(keyNames)-1)
	for k := RevisiDIPA; k <= NilaiAkhirKomponen; k++ {
		keys = append(keys, k)
	}
	return keys
}

// String returns the canonical name of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Synthetic reports whether the key has no literal column of its own.
func (k Key) Synthetic() bool {
	return k == NilaiAkhirAspek || k == NilaiAkhirKomponen
}

// MarshalText encodes the key as its canonical name.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a canonical name.
func (k *Key) UnmarshalText(b []byte) error {
	parsed, err := ParseKey(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKey returns the key with the given canonical name.
func ParseKey(name string) (Key, error) {
	for k, n := range keyNames {
		if n == name {
			return k, nil
		}
	}
	return Unresolved, fmt.Errorf("unknown explanation key %q", name)
}

// Entry is the explanation content for one key.
type Entry struct {
	Key   Key
	Title string
	HTML  string // Trusted fragment: built in, or sanitized on load.
}

// Catalog maps keys to entries. It has no exported mutators; share it by
// pointer across renders and goroutines.
type Catalog struct {
	entries  map[Key]Entry
	fallback string
}

// DefaultFallback is shown when a lookup misses.
const DefaultFallback = "Penjelasan untuk kolom ini belum tersedia."

// New builds a catalog from entries. Entries with the Unresolved key are
// ignored. An empty fallback selects DefaultFallback.
func New(entries []Entry, fallback string) *Catalog {
	if fallback == "" {
		fallback = DefaultFallback
	}
	c := &Catalog{entries: make(map[Key]Entry, len(entries)), fallback: fallback}
	for _, e := range entries {
		if e.Key == Unresolved {
			continue
		}
		c.entries[e.Key] = e
	}
	return c
}

// Lookup returns the entry for k.
func (c *Catalog) Lookup(k Key) (Entry, bool) {
	e, ok := c.entries[k]
	return e, ok
}

// Keys returns the keys with entries, in declaration order.
func (c *Catalog) Keys() []Key {
	keys := make([]Key, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Fallback returns the placeholder text for lookup misses.
func (c *Catalog) Fallback() string {
	return c.fallback
}

// Explanation is what a click on an annotated column reveals.
type Explanation struct {
	Key      Key
	Title    string
	HTML     string
	Resolved bool
}

// Explain resolves k to displayable content. A miss, including Unresolved,
// yields the fallback text and Resolved=false.
func (c *Catalog) Explain(k Key) Explanation {
	e, ok := c.entries[k]
	if !ok {
		return Explanation{Key: k, HTML: c.fallback}
	}
	return Explanation{Key: k, Title: e.Title, HTML: e.HTML, Resolved: true}
}
