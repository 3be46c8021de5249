package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Emitted source
	v.SetDefault("namespace", "Driver")
	v.SetDefault("indent", "    ")
	v.SetDefault("rework_marker", "// TODO It is not the best way to identify. Please change to a better method.")
	v.SetDefault("usings", []string{
		"Codeer.TestAssistant.GeneratorToolKit",
		"Codeer.Friendly.Windows.Grasp",
		"Codeer.Friendly.Windows",
		"Codeer.Friendly.Dynamic",
		"Codeer.Friendly",
		"System.Linq",
	})

	// Naming
	v.SetDefault("class_suffix", "Driver")
	v.SetDefault("attach_verb", "Attach")

	// Resolution
	v.SetDefault("search_usings", []string{"RM.Friendly.WPFStandardControls"})

	// Known drivers of standard controls
	v.SetDefault("drivers", []map[string]any{
		{"type_full_name": "System.Windows.Controls.Button", "driver": wpf + "WPFButtonBase"},
		{"type_full_name": "System.Windows.Controls.CheckBox", "driver": wpf + "WPFToggleButton"},
		{"type_full_name": "System.Windows.Controls.ComboBox", "driver": wpf + "WPFComboBox"},
		{"type_full_name": "System.Windows.Controls.DataGrid", "driver": wpf + "WPFDataGrid"},
		{"type_full_name": "System.Windows.Controls.ListBox", "driver": wpf + "WPFListBox"},
		{"type_full_name": "System.Windows.Controls.ListView", "driver": wpf + "WPFListView"},
		{"type_full_name": "System.Windows.Controls.RadioButton", "driver": wpf + "WPFToggleButton"},
		{"type_full_name": "System.Windows.Controls.TabControl", "driver": wpf + "WPFTabControl"},
		{"type_full_name": "System.Windows.Controls.TextBlock", "driver": wpf + "WPFTextBlock"},
		{"type_full_name": "System.Windows.Controls.TextBox", "driver": wpf + "WPFTextBox"},
		{"type_full_name": "System.Windows.Controls.TreeView", "driver": wpf + "WPFTreeView"},
	})

	// Logging
	v.SetDefault("verbose", false)
	v.SetDefault("log_output", []string{"stderr"})
}

const wpf = "RM.Friendly.WPFStandardControls."
