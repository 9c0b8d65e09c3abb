// Package ioutils provides file system and image processing utilities.
//
// # File Operations
//
//	// Ensure the output directory exists
//	err := ioutils.EnsureDir("/music/downloads")
//
// # Image Processing
//
// The ImageService prepares cover art for embedding:
//
//	svc := ioutils.NewImageService()
//
//	// Resize to fit within 500x500 and re-encode as JPEG
//	jpegData, err := svc.ResizeImage(imageData, 500, 500)
package ioutils
