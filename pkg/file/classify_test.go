package file

import "testing"

func TestExtension(t *testing.T) {
	if got := Extension("photo.JPG"); got != "jpg" {
		t.Errorf("expected jpg, got %q", got)
	}
	if got := Extension("archive.tar.gz"); got != "gz" {
		t.Errorf("expected gz, got %q", got)
	}
	if got := Extension("README"); got != "" {
		t.Errorf("expected empty extension for dotless name, got %q", got)
	}
	if got := Extension(".hidden"); got != "" {
		t.Errorf("expected empty extension for leading-dot name, got %q", got)
	}
	if got := Extension("trailing."); got != "" {
		t.Errorf("expected empty extension for trailing dot, got %q", got)
	}
}

func TestKind(t *testing.T) {
	for _, ext := range []string{"jpg", "png", "webp", "heic", "avif"} {
		if got := Kind(ext); got != TypeImage {
			t.Errorf("Kind(%q) = %q, expected %q", ext, got, TypeImage)
		}
	}
	for _, ext := range []string{"mp4", "mkv", "webm", "3gp"} {
		if got := Kind(ext); got != TypeVideo {
			t.Errorf("Kind(%q) = %q, expected %q", ext, got, TypeVideo)
		}
	}
	if got := Kind("pdf"); got != TypeOther {
		t.Errorf("Kind(pdf) = %q, expected %q", got, TypeOther)
	}
	if got := Kind(""); got != TypeOther {
		t.Errorf("Kind of empty extension = %q, expected %q", got, TypeOther)
	}
}

func TestIsMediaFile(t *testing.T) {
	if !IsMediaFile("holiday.MOV") {
		t.Error("expected holiday.MOV to be a media file")
	}
	if !IsImageFile("scan.tiff") {
		t.Error("expected scan.tiff to be an image")
	}
	if IsVideoFile("scan.tiff") {
		t.Error("scan.tiff is not a video")
	}
	if IsMediaFile("notes.txt") {
		t.Error("notes.txt is not a media file")
	}
	if IsMediaFile("jpg") {
		t.Error("a file named jpg with no extension is not a media file")
	}
}
