// Package plot draws simple line and bar charts that can be placed on
// slides with fastdeck.Content.AddFig or passed to fastdeck.Classify.
//
// Charts export to SVG (github.com/ajstarks/svgo) and PNG
// (github.com/fogleman/gg) from one shared layout, so both formats place
// every axis, bar and point identically.
package plot
