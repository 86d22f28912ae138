// Package tui implements the interactive terminal portal.
//
// The portal is a Bubble Tea program following the Elm architecture. AppModel
// is the coordinator: it owns the navbar and the search bar, and mounts one
// route view at a time inside the shared container
// (Styles.RenderApplicationContainer).
//
// # Routes
//
//   - "/": HomeModel, hero copy, stats and featured courses by tab
//   - "/tutorials": TutorialsModel, layout, sort, category, bookmarks, paging
//   - "/week-one": WeekOneModel, the week content page
//
// Other navbar links render a placeholder. Navigating mounts a fresh model
// for the target route and unmounts the previous one; Week One tears down
// its players on unmount.
//
// # Week One
//
// The page is a column of toggle panels: Class Notes (open at mount),
// Required Videos, Questions Asked in Class, Checklist and Todo List. Every
// row that reacts to a key is focusable and the cursor walks them in order:
//   - panel header: enter toggles the panel
//   - video: enter shows or hides the player, y copies the embed link
//   - checklist task: enter marks it done or not done
//   - todo input: enter starts typing, enter again adds the task
//   - todo: x deletes it
//
// All state transitions go through the value types of package state, so the
// models here only translate keys into transitions and render the result.
//
// # Key Bindings
//
// Global keys (1-6 links, / search, m menu, D dark mode, ? help, q quit)
// work whenever no text input has focus. Help text follows the focused
// component through bubbles/help.
package tui
