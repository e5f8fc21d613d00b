package roster

// Package roster manages the brigade: fetching the crew list, adding and
// removing members on the backend, and the in-memory selection of members
// and their hours for the report being edited.
