package patch

// orinNano is a trimmed decompiled Orin Nano tree carrying every node the
// built-in policy touches.
const orinNano = `/dts-v1/;

/ {
	compatible = "nvidia,p3768-0000+p3767-0005\0nvidia,tegra234";

	sdhci@3440000 {
		compatible = "nvidia,tegra234-sdhci";
		status = "disabled";
	};

	cam_i2cmux {
		#address-cells = <0x01>;

		i2c@0 {
			reg = <0x00>;

			rbpcv3_imx477_a@1a {
				compatible = "ridgerun,imx477";

				mode0 {
					tegra_sinterface = "serial_b";
				};

				mode1 {
					tegra_sinterface = "serial_b";
				};

				ports {

					port@0 {

						endpoint {
							port-index = <0x01>;
						};
					};
				};
			};

			rbpcv2_imx219_a@10 {
				compatible = "sony,imx219";

				mode0 {
					tegra_sinterface = "serial_b";
				};

				mode1 {
					tegra_sinterface = "serial_b";
				};

				mode2 {
					tegra_sinterface = "serial_b";
				};

				mode3 {
					tegra_sinterface = "serial_b";
				};

				mode4 {
					tegra_sinterface = "serial_b";
				};

				ports {

					port@0 {

						endpoint {
							port-index = <0x01>;
						};
					};
				};
			};
		};
	};
};
`
