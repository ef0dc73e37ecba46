// Package navmenu holds ordered navigation menus: slug keys mapped to the
// display labels a documentation framework shows in its sidebar.
//
// A Menu is immutable once built. Entries keep their declaration order, which
// is the order the sidebar renders them in, so menus are backed by a slice of
// pairs and never by a Go map.
//
// The integrations section ships as a built-in table (see Integrations). The
// same shape can be authored as a YAML mapping and read with Load or Parse,
// and emitted for a consumer with Render.
package navmenu
