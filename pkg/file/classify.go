package file

import (
	"strings"
)

const (
	TypeImage = "Image"
	TypeVideo = "Video"
	TypeOther = "Other"
)

// Supported media extensions, lower-cased and without the leading dot.
var imageExtensions = []string{"jpg", "jpeg", "png", "gif", "bmp", "tiff", "webp", "svg", "heic", "avif"}
var videoExtensions = []string{"mp4", "avi", "mov", "wmv", "mkv", "flv", "webm", "mpeg", "mpg", "3gp"}

// Extension returns the lower-cased suffix after the last dot of filename.
// Dotless names, names starting with a dot and names ending with a dot all
// yield an empty extension.
func Extension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx <= 0 || idx == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

// Kind maps an extension (as returned by Extension) to a coarse media type.
func Kind(extension string) string {
	if contains(imageExtensions, extension) {
		return TypeImage
	}
	if contains(videoExtensions, extension) {
		return TypeVideo
	}
	return TypeOther
}

func IsImageFile(filename string) bool {
	return Kind(Extension(filename)) == TypeImage
}

func IsVideoFile(filename string) bool {
	return Kind(Extension(filename)) == TypeVideo
}

// IsMediaFile reports whether filename has a supported image or video extension.
func IsMediaFile(filename string) bool {
	return IsImageFile(filename) || IsVideoFile(filename)
}

func contains(slice []string, item string) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
