package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	config "github.com/quizcraft/quiz_builder/configs"
	"github.com/quizcraft/quiz_builder/middleware"
)

// UploadCoverImage pushes a cover image to Cloudinary and hands back
// the hosted URL. The file contents are never interpreted here; the
// quiz only ever stores the returned URL string.
func UploadCoverImage(c *fiber.Ctx) error {
	callerID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Image file is required."})
	}

	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize upload client."})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadResult, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   "quiz_covers",
		PublicID: fmt.Sprintf("cover_%s_%d", callerID, time.Now().Unix()),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload file."})
	}

	return c.JSON(fiber.Map{"imageUrl": uploadResult.SecureURL})
}
