// Package imagegen generates images from text prompts through an
// OpenAI-compatible image generation API.
//
// The service returns a hosted URL plus a revised prompt (the model
// rewrites prompts before rendering); both are kept so callers can
// record what was actually generated. A fixed style catalog supports
// generating the same subject across many art styles.
package imagegen

// Image is one generated image with its prompt metadata.
type Image struct {
	// URL is the hosted location of the generated image.
	URL string

	// LocalPath is set once the image has been downloaded.
	LocalPath string

	// Prompt is the prompt as submitted.
	Prompt string

	// RevisedPrompt is the service's rewrite of the prompt.
	RevisedPrompt string
}

// Styles is the catalog used by styled generation: one image per entry,
// each appended to the base prompt.
var Styles = []string{
	"Abstract Art",
	"Abstract Geometry",
	"Art Deco",
	"Art Nouveau",
	"Bauhaus",
	"Bokeh Art",
	"Brutalism in design",
	"Byzantine Art",
	"Celtic Art",
	"Charcoal",
	"Chinese Brush Painting",
	"Chiptune Visuals",
	"Concept Art",
	"Constructivism",
	"Cyber Folk",
	"Cybernetic Art",
	"Cyberpunk",
	"Dadaism",
	"Data Art",
	"Digital Collage",
	"Digital Cubism",
	"Digital Impressionism",
	"Digital Painting",
	"Double Exposure",
	"Dreamy Fantasy",
	"Dystopian Art",
	"Etching",
	"Expressionism",
	"Fauvism",
	"Flat Design",
	"Fractal Art",
	"Futurism",
	"Glitch Art",
	"Gothic Art",
	"Gouache",
	"Greco-Roman Art",
	"Impressionism",
	"Ink Wash",
	"Isometric Art",
	"Japanese Ukiyo-e",
	"Kinetic Typography",
	"Lithography",
	"Low Poly",
	"Macabre Art",
	"Magic Realism",
	"Minimalism",
	"Modernism",
	"Monogram",
	"Mosaic",
	"Neon Graffiti",
	"Neon Noir",
	"Origami",
	"Papercut",
	"Parallax Art",
	"Pastel Drawing",
	"Photorealism",
	"Pixel Art",
	"Pointillism",
	"Polyart",
	"Pop Art",
	"Psychedelic Art",
	"Rennaissance/Baroque",
	"Retro Wave",
	"Romanticism",
	"Sci-Fi Fantasy",
	"Scratchboard",
	"Steampunk",
	"Stippling",
	"Surrealism",
	"Symbolism",
	"Trompe-l'eil",
	"Vaporwave",
	"Vector Art",
	"Voxel Art",
	"Watercolor",
	"Woodblock Printing",
	"Zen Doodle",
}

// StyledPrompt combines a base prompt with a style from the catalog.
func StyledPrompt(prompt, style string) string {
	return prompt + ", in the style of " + style
}
