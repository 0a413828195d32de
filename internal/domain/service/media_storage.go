package service

import "context"

// MediaStorage is the external video-storage collaborator: binary payload
// (or base64 data URI) in, reference URL out. Implementations bound the
// upload with a fixed timeout and report it as a domain upload-timeout
// error rather than retrying.
type MediaStorage interface {
	// UploadVideo stores the video payload and returns its public URL.
	UploadVideo(ctx context.Context, video string, fileName string) (string, error)
}
