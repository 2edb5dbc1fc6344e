// Package assets loads the HTML document templates and CSS styles used to
// render reveal.js documents.
//
// Every loader reads the same layout:
//
//	styles/{name}.css              extra CSS inlined in the document head
//	templates/{name}/presentation.html
//	templates/{name}/slide.html
//
// FSLoader serves it from any fs.FS: the embedded defaults, or a directory
// on disk opened through os.Root. Layered stacks loaders so a custom
// directory may override a single template and inherit the rest.
//
// Names are single path elements; anything with a separator or a dot is
// rejected before the file system is touched.
package assets
