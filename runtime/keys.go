package runtime

// rootKey is the tree key of a renderer's root component.
const rootKey = "__root__"
