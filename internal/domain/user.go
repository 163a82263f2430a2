package domain

import "time"

// UserAccount is the root aggregate: one document per registered user,
// exclusively owning its embedded cart and favorites lists. Version is an
// optimistic concurrency counter compared on every write.
type UserAccount struct {
	ID           string          `bson:"_id,omitempty" json:"id"`
	Name         string          `bson:"name" json:"name"`
	Mobile       string          `bson:"mobile" json:"mobile"`
	PasswordHash string          `bson:"password" json:"-"`
	Cart         []CartLine      `bson:"cart" json:"cart"`
	Favorites    []FavoriteEntry `bson:"favorites" json:"favorites"`
	Version      int64           `bson:"version" json:"-"`
	CreatedAt    time.Time       `bson:"created_at" json:"-"`
	UpdatedAt    time.Time       `bson:"updated_at" json:"-"`
}

// CartLine is one cart entry. At most one line per product; Qty stays > 0.
type CartLine struct {
	ProductID string  `bson:"product_id" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Qty       int     `bson:"qty" json:"qty"`
	Price     float64 `bson:"price" json:"price"`
	Image     string  `bson:"image" json:"image"`
	Desc      string  `bson:"desc" json:"desc"`
}

type FavoriteEntry struct {
	ProductID string  `bson:"product_id" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Image     string  `bson:"image" json:"image"`
	Desc      string  `bson:"desc" json:"desc"`
}
