package images

import (
	"crypto/md5"
	"fmt"
)

// Checksum returns a hex MD5 digest of b's size and pixel bytes. Two bitmaps
// with the same checksum hold the same image, which makes it a cheap
// idempotency check for in-place operations.
//
// Example:
//
//	before := images.Checksum(b)
//	b.ApplyMask(mask)
//	b.ApplyMask(mask)
//	fmt.Println(images.Checksum(b) != before)
func Checksum(b *Bitmap) string {
	hash := md5.New()
	fmt.Fprintf(hash, "%dx%d:", b.width, b.height)
	hash.Write(b.pix)
	return fmt.Sprintf("%x", hash.Sum(nil))
}
