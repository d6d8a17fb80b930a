package app

// hintHeadline and hintBody form the remediation message printed when the
// host looks like a Raspberry Pi but the ALSA listings show no I2S DAC.
const hintHeadline = "PCM5100/I2S card not detected in ALSA output."

const hintBody = `Quick checklist (Pi OS Bookworm / Raspberry Pi 5):
  - Enable I2S and an I2S DAC overlay in /boot/firmware/config.txt, then reboot.
    Common working overlay for PCM5100 boards:
      dtparam=i2s=on
      dtoverlay=hifiberry-dac

After reboot, verify:
  - aplay -l shows an extra sound card for the I2S DAC
  - Then run dacsmoke again (optionally with --device plughw:<card>,<dev>).`

// installGuidance is printed when no playback backend is installed at all.
const installGuidance = `No playback backend found. Install one of: mpg123, ffplay (ffmpeg), or ffmpeg+aplay.
Examples:
  sudo apt update
  sudo apt install -y mpg123
or:
  sudo apt install -y ffmpeg alsa-utils`
