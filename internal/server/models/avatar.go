package models

// AvatarUploadTask instructs the client to upload an avatar image using a
// presigned URL.
type AvatarUploadTask struct {
	// Key is the object-storage key to pass to MakePublic afterwards.
	Key string
	// URL is a temporary presigned HTTP URL for the client to PUT the image.
	URL string
}
