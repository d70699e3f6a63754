// Package cart adalah keranjang pengadaan. Store bersifat immutable: setiap operasi
// mengembalikan Store baru dan tidak mengubah penerimanya.
package cart

import "github.com/shopspring/decimal"

type Product struct {
	ID       string          `json:"id"`
	Nama     string          `json:"nama"`
	Harga    decimal.Decimal `json:"harga"`
	Supplier string          `json:"supplier"`
	Gambar   string          `json:"gambar"`
}

type Item struct {
	Product
	Quantity int `json:"quantity"`
}

// Store menyimpan item sesuai urutan pertama kali ditambahkan. Zero value siap dipakai.
type Store struct {
	items []Item
}

func (s Store) indexOf(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (s Store) clone() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s Store) AddToCart(p Product) Store {
	items := s.clone()
	if i := s.indexOf(p.ID); i >= 0 {
		items[i].Quantity++
		return Store{items: items}
	}
	return Store{items: append(items, Item{Product: p, Quantity: 1})}
}

// AddQuantity menambah n unit sekaligus; n < 1 tidak mengubah apa pun.
func (s Store) AddQuantity(p Product, n int) Store {
	if n < 1 {
		return s
	}
	items := s.clone()
	if i := s.indexOf(p.ID); i >= 0 {
		items[i].Quantity += n
		return Store{items: items}
	}
	return Store{items: append(items, Item{Product: p, Quantity: n})}
}

func (s Store) Increment(id string) Store {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}
	items := s.clone()
	items[i].Quantity++
	return Store{items: items}
}

// Decrement menghapus item begitu quantity mencapai 0.
func (s Store) Decrement(id string) Store {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}
	items := s.clone()
	if items[i].Quantity <= 1 {
		return Store{items: append(items[:i], items[i+1:]...)}
	}
	items[i].Quantity--
	return Store{items: items}
}

func (s Store) ClearCart() Store {
	return Store{}
}

func (s Store) Items() []Item {
	return s.clone()
}

func (s Store) Get(id string) (Item, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return Item{}, false
}

func (s Store) Len() int { return len(s.items) }

// Total = jumlah harga x quantity.
func (s Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Harga.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
