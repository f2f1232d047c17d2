// Package render defines the backend-neutral drawing, input and engine
// interfaces the game is written against. The ebiten subpackage implements
// them on Ebitengine.
package render
