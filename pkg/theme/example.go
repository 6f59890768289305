// example.go — Sample theme file for `wallgen init`.
package theme

// ExampleYAML is a commented starter wallgen.yaml.
const ExampleYAML = `# wallgen theme file
#
# Extra schemes are added to the built-in table. A scheme named like a
# built-in replaces it.
schemes:
  - name: nord
    stops: ["#2e3440", "#3b4252", "#88c0d0"]
  - name: gruvbox
    stops: ["#1d2021", "#32302f", "#d79921"]

# Restrict the random pick. Leave empty to pick from every scheme.
only: []

# Preset names (1080p, 1440p, 4k, ultrawide, ...) or WxH.
resolutions: [1080p, 1440p, 4k]

# Target of modern-gradient.jpg. Must be one of the resolutions above.
default: 1080p

quality: 95
`
