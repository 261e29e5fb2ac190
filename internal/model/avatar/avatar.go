package avatar

import (
	"net/url"
	"strings"
)

// BaseURL is the static file server all image URLs resolve against.
const BaseURL = "http://www.tam-files.toko-aplikasi.my.id/images/avatars/"

// imageExtensions lists the filename suffixes stripped when deriving a name.
var imageExtensions = []string{".png", ".jpg", ".jpeg"}

// Avatar is one named entry of the catalog with its resolvable image URL.
type Avatar struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageurl"`
}

// FromFilename derives an Avatar from a source filename: the recognized image
// extension is stripped for the display name, and the URL joins BaseURL with
// the path-escaped filename (spaces become %20).
func FromFilename(filename string) Avatar {
	name := filename
	for _, ext := range imageExtensions {
		if strings.HasSuffix(name, ext) {
			name = strings.TrimSuffix(name, ext)
			break
		}
	}
	return Avatar{
		Name:     name,
		ImageURL: BaseURL + url.PathEscape(filename),
	}
}

// Filename returns the last path segment of the image URL, unescaped.
func (a Avatar) Filename() string {
	segment := a.ImageURL
	if idx := strings.LastIndex(segment, "/"); idx >= 0 {
		segment = segment[idx+1:]
	}
	if unescaped, err := url.PathUnescape(segment); err == nil {
		return unescaped
	}
	return segment
}

// Extension returns the suffix after the final dot of the image URL, without
// the dot. URLs with no dot yield an empty string.
func (a Avatar) Extension() string {
	if idx := strings.LastIndex(a.ImageURL, "."); idx >= 0 {
		return a.ImageURL[idx+1:]
	}
	return ""
}

// seedFilenames is the fixed directory listing of the avatar file server.
var seedFilenames = []string{
	"Abraham Baker.png", "Adem Lane.png", "Adil Floyd.png",
	"Adriana O'Sullivan.png", "Alec Whitten.png", "Alesha Barry.png",
	"Ali Mahdi.png", "Aliah Lane.png", "Alisa Hester.png",
	"Amanda Lowery.png", "Amelie Bennett.png", "Amelie Laurent.png",
	"Ammar Foley.png", "Anaiah Whitten.png", "Andi Lane.png",
	"Angelica Wallace.png", "Anita Cruz.png", "Ashton Blackwell.png",
	"Ashwin Santiago.png", "Aston Hood.png", "Ava Bentley.png",
	"Ava Wright.png", "Ayah Wilkinson.png", "Aysha Becker.png",
	"Bailey Richards.png", "Bec Ferguson.png", "Belle Woods.png",
	"Benedict Doherty.png", "Billie Wright.png", "Blake Riley.png",
	"Brianna Ware.png", "Byron Robertson.png", "Caitlyn King.png",
	"Cameron Yang.png", "Candice Wu.png", "Clifford Jennings.png",
	"Cohen Lozano.png", "Courtney Turner.png", "Danyal Lester.png",
	"Demi Wilkinson.png", "Dillan Nguyen.png", "Drew Cano.png",
	"Eduard Franz.png", "Elena Owens.png", "Elisa Nishikawa.png",
	"Elsie Roy.png", "Erica Wyatt.png", "Ethan Campbell.png",
	"Ethan Valdez.png", "Eva Bond.png", "Eve Leroy.png",
	"Fergus Gray.png", "Fleur Cook.png", "Florence Shaw.png",
	"Frank Whitaker.png", "Franklin Mays.png", "Freya Browning.png",
	"Genevieve Mclean.png", "Harriet Rojas.png", "Harry Bender.png",
	"Hasan Johns.png", "Herbert Fowler.png", "Isla Allison.png",
	"Isobel Carroll.png", "Isobel Fuller.png", "Jackson Reed.png",
	"Jay Shepard.png", "Jaya Willis.png", "Jayden Moss.png",
	"Jessie Meyton.png", "Jonathan Kelly.png", "Jordan Burgess.png",
	"Joshua Wilson.png", "Julius Vaughan.png", "Kaden Scott.png",
	"Kaitlin Hale.png", "Kari Rasmussen.png", "Kate Morrison.png",
	"Katherine Moss.png", "Katy Fuller.png", "Kelly Williams.png",
	"Kelsey Lowe.png", "Koray Okumus.png", "Kyla Clay.png",
	"Lana Steiner.png", "Levi Rocha.png", "Leyton Fields.png",
	"Liam Hood.png", "Lily-Rose Chedjou.png", "Loki Bright.png",
	"Lola Sanders.png", "Lori Bryson.png", "Lucy Bond.png",
	"Lulu Meyers.png", "Luqman Anthony.png", "Lyle Kauffman.png",
	"Maddison Gillespie.png", "Madeleine Pitts.png", "Marco Gross.png",
	"Marco Kelly.png", "Marvin Robbins.png", "Mathilde Lewis.png",
	"Maxwell Tan.png", "Mikey Lawrence.png", "Mollie Hall.png",
	"Molly Vaughan.png", "Nala Goins.png", "Natali Craig.png",
	"Nic Fassbender.png", "Nicola Harris.png", "Nicolas Trevino.png",
	"Nicolas Wang.png", "Nikolas Gibbons.png", "Noah Pierre.png",
	"Noel Baldwin.png", "Olivia Rhye.png", "Olly Schroeder.png",
	"Orlando Diggs.png", "Owen Garcia.png", "Owen Harding.png",
	"Phoenix Baker.png", "Pippa Wilkinson.png", "Priya Shepard.png",
	"Rachael Strong.png", "Rayhan Zua.png", "Rene Wells.png",
	"Rhea Levine.png", "Rhianna Shepard.png", "Riley O'Moore.png",
	"Rory Huff.png", "Rosalee Melvin.png", "Sally Mason.png",
	"Sarah Page.png", "Scott Clayton.png", "Sienna Hewitt.png",
	"Sophia Perez.png", "Stefan Sears.png", "Youssef Roberson.png",
	"Zahir Mays.png", "Zahra Christensen.png", "Zaid Schwartz.png",
	"Zara Bush.png", "Zaynab Donnelly.png", "Zuzanna Burke.png",
}

// Seed builds the fixed catalog records from the hardcoded directory listing.
func Seed() []Avatar {
	avatars := make([]Avatar, 0, len(seedFilenames))
	for _, filename := range seedFilenames {
		avatars = append(avatars, FromFilename(filename))
	}
	return avatars
}
