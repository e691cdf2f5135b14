// Package pages finds page folders under a site root and reads the three
// source files each page is made of: content.json, style.css and script.js.
//
// A page folder is a direct child directory of the root that contains
// content.json. Nothing is cached; every call goes back to the filesystem.
package pages
