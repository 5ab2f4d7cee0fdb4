package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// Storage buckets. Upload endpoints only accept these names.
const (
	BucketHeroImages      = "hero-images"
	BucketFacilities      = "facilities"
	BucketEvents          = "events"
	BucketProgramImages   = "program-images"
	BucketCourseMaterials = "course-materials"
)

// DefaultImagePath is served when an image reference cannot be
// resolved to a usable URL.
const DefaultImagePath = "/images/placeholder.jpg"

// SectionStats keys the homepage statistics section in section_settings.
const SectionStats = "stats"

const MimeImage = "image/"

var (
	AllowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".svg"}
	AllowedVideoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv", ".webm"}
	KnownBuckets           = []string{BucketHeroImages, BucketFacilities, BucketEvents, BucketProgramImages, BucketCourseMaterials}
)
