package gorm

import "time"

// PhotoStatus tracks the two-step presigned upload flow.
type PhotoStatus string

const (
	PhotoStatusPending  PhotoStatus = "pending"
	PhotoStatusUploaded PhotoStatus = "uploaded"
	PhotoStatusDeleted  PhotoStatus = "deleted"
)

// ActivityCategory classifies a trip activity.
type ActivityCategory string

const (
	ActivitySightseeing   ActivityCategory = "sightseeing"
	ActivityFood          ActivityCategory = "food"
	ActivityTransport     ActivityCategory = "transport"
	ActivityAccommodation ActivityCategory = "accommodation"
	ActivityGeneric       ActivityCategory = "activity"
	ActivityOther         ActivityCategory = "other"
)

// Trip is a travel entry; albums, photos and activities hang off it.
type Trip struct {
	ID          uint       `gorm:"column:id;primaryKey"`
	UserID      uint       `gorm:"column:user_id;not null;index"`
	Name        string     `gorm:"column:name;type:varchar(200);not null"`
	Destination *string    `gorm:"column:destination;type:varchar(200)"`
	CountryCode *string    `gorm:"column:country_code;type:varchar(3)"`
	Lat         *float64   `gorm:"column:lat"`
	Lon         *float64   `gorm:"column:lon"`
	StartDate   *time.Time `gorm:"column:start_date;type:date"`
	EndDate     *time.Time `gorm:"column:end_date;type:date"`
	Notes       *string    `gorm:"column:notes;type:text"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	User   User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Albums []Album `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Trip) TableName() string {
	return "trips"
}

// Album groups photos within a trip.
type Album struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	TripID      uint      `gorm:"column:trip_id;not null;index"`
	UserID      uint      `gorm:"column:user_id;not null;index"`
	Name        string    `gorm:"column:name;type:varchar(200);not null"`
	Description *string   `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Photos []Photo `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Album) TableName() string {
	return "albums"
}

// Photo is an object-storage-backed picture created via the presigned
// upload flow: a pending row first, confirmed once the object exists.
type Photo struct {
	ID          uint        `gorm:"column:id;primaryKey"`
	AlbumID     uint        `gorm:"column:album_id;not null;index"`
	TripID      uint        `gorm:"column:trip_id;not null;index"`
	UserID      uint        `gorm:"column:user_id;not null;index"`
	Filename    string      `gorm:"column:filename;type:varchar(255);not null"`
	StorageKey  string      `gorm:"column:storage_key;type:varchar(500);not null"`
	ContentType string      `gorm:"column:content_type;type:varchar(50);not null"`
	Status      PhotoStatus `gorm:"column:status;type:varchar(10);not null;default:pending"`
	PublicURL   *string     `gorm:"column:public_url;type:varchar(500)"`
	SizeBytes   *int64      `gorm:"column:size_bytes"`
	Width       *int        `gorm:"column:width"`
	Height      *int        `gorm:"column:height"`
	Position    int         `gorm:"column:position;not null;default:0"`
	Caption     *string     `gorm:"column:caption;type:varchar(500)"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Photo) TableName() string {
	return "photos"
}

// Activity is one thing done on a trip.
type Activity struct {
	ID           uint             `gorm:"column:id;primaryKey"`
	TripID       uint             `gorm:"column:trip_id;not null;index"`
	UserID       uint             `gorm:"column:user_id;not null;index"`
	Name         string           `gorm:"column:name;type:varchar(200);not null"`
	Category     ActivityCategory `gorm:"column:category;type:varchar(20);not null;default:other"`
	ActivityDate *time.Time       `gorm:"column:activity_date;type:date"`
	Cost         *float64         `gorm:"column:cost"`
	Notes        *string          `gorm:"column:notes;type:text"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Activity) TableName() string {
	return "activities"
}
